// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/cockroachdb/errors"

	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/fault"
	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/merkle"
	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/storage"
	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/transactionrecord"
	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/util"
)

// decoded form of a single packed transaction
type decodedRecord struct {
	Link        merkle.Digest                  `json:"link"`
	Type        transactionrecord.TagType      `json:"type"`
	Size        int                            `json:"size"`
	Transaction *transactionrecord.Transaction `json:"transaction"`
	Packed      transactionrecord.Packed       `json:"packed,omitempty"`
}

// digests of a single packed transaction
type hashedRecord struct {
	Link     merkle.Digest             `json:"link"`
	Type     transactionrecord.TagType `json:"type"`
	Stored   *merkle.Digest            `json:"transactionsHash,omitempty"`
	Computed *merkle.Digest            `json:"computedTransactionsHash,omitempty"`
	Valid    *bool                     `json:"valid,omitempty"`
}

// codec commands
//
// these operate only on their arguments and cannot access the
// archive or the configuration file
//
// returns false if the command needs the archive
func processCodecCommand(program string, arguments []string, verbose bool) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "decode", "d":
		if 1 != len(arguments) {
			exitwithstatus.Message("%s: decode requires one HEX argument", program)
		}
		record, err := decodeRecord(arguments[0], verbose)
		if nil != err {
			exitwithstatus.Message("%s: decode error: %s", program, err)
		}
		printJson("", record)

	case "hash":
		if 1 != len(arguments) {
			exitwithstatus.Message("%s: hash requires one HEX argument", program)
		}
		hashed, err := hashRecord(arguments[0])
		if nil != err {
			exitwithstatus.Message("%s: hash error: %s", program, err)
		}
		printJson("", hashed)

	case "store", "show", "list":
		return false // continue processing

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %v\n", command)
		}
		usage(program)
		exitwithstatus.Exit(1)
	}
	return true
}

// archive commands only read the database
func isReadOnlyCommand(command string) bool {
	switch command {
	case "show", "list":
		return true
	default:
		return false
	}
}

// commands that need the archive
func processArchiveCommand(log *logger.L, configuration *Configuration, arguments []string, verbose bool) error {

	command := arguments[0]
	arguments = arguments[1:]

	switch command {
	case "store":
		if 0 == len(arguments) {
			return errors.New("store requires at least one HEX argument")
		}
		for _, s := range arguments {
			link, err := storeRecord(configuration.networkType(), s)
			if nil != err {
				return err
			}
			log.Infof("stored: %s", link)
			fmt.Printf("%s\n", link)
		}

	case "show":
		if 1 != len(arguments) {
			return errors.New("show requires one LINK argument")
		}
		record, err := showRecord(arguments[0], verbose)
		if nil != err {
			return err
		}
		printJson("", record)

	case "list":
		links, err := listRecords(arguments)
		if nil != err {
			return err
		}
		for _, link := range links {
			fmt.Printf("%s\n", link)
		}

	default:
		return errors.Newf("no such command: %q", command)
	}
	return nil
}

func usage(program string) {
	fmt.Printf("usage: %s [--help] [--verbose] [--version] [--config-file=FILE] command arguments...\n", program)

	fmt.Printf("supported commands:\n\n")
	fmt.Printf("  help                       (h)      - display this message\n\n")
	fmt.Printf("  version                    (v)      - display version string\n\n")

	fmt.Printf("  decode HEX                 (d)      - decode a packed transaction to JSON\n")
	fmt.Printf("  hash HEX                            - display the link and, for aggregates,\n")
	fmt.Printf("                                        check the stored transactions hash\n")
	fmt.Printf("\n")

	fmt.Printf("  the following need --config-file\n\n")
	fmt.Printf("  store HEX...                        - archive packed transactions\n")
	fmt.Printf("  show LINK                           - decode an archived transaction\n")
	fmt.Printf("  list [TYPE]                         - list archived links, optionally of one type\n")
	fmt.Printf("\n")
}

// decode a hex transaction that must have no trailing data
func unpackHex(s string) (transactionrecord.Packed, *transactionrecord.Transaction, error) {
	b, err := util.HexToBytes(s)
	if nil != err {
		return nil, nil, err
	}
	packed := transactionrecord.Packed(b)

	transaction, n, err := packed.Unpack()
	if nil != err {
		return nil, nil, err
	}
	if n != len(packed) {
		return nil, nil, errors.Wrapf(fault.ErrSizeMismatch, "%d trailing bytes", len(packed)-n)
	}
	return packed, transaction, nil
}

func makeDecodedRecord(packed transactionrecord.Packed, transaction *transactionrecord.Transaction, verbose bool) *decodedRecord {
	record := &decodedRecord{
		Link:        packed.MakeLink(),
		Type:        transaction.Type(),
		Size:        len(packed),
		Transaction: transaction,
	}
	if verbose {
		record.Packed = packed
	}
	return record
}

func decodeRecord(s string, verbose bool) (*decodedRecord, error) {
	packed, transaction, err := unpackHex(s)
	if nil != err {
		return nil, err
	}
	return makeDecodedRecord(packed, transaction, verbose), nil
}

func hashRecord(s string) (*hashedRecord, error) {
	packed, transaction, err := unpackHex(s)
	if nil != err {
		return nil, err
	}

	hashed := &hashedRecord{
		Link: packed.MakeLink(),
		Type: transaction.Type(),
	}

	if aggregate, ok := transaction.Body.(*transactionrecord.Aggregate); ok {
		computed, err := transactionrecord.TransactionsHash(aggregate.Transactions)
		if nil != err {
			return nil, err
		}
		stored := aggregate.TransactionsHash
		valid := stored == computed
		hashed.Stored = &stored
		hashed.Computed = &computed
		hashed.Valid = &valid
	}
	return hashed, nil
}

func storeRecord(network transactionrecord.NetworkType, s string) (merkle.Digest, error) {
	packed, transaction, err := unpackHex(s)
	if nil != err {
		return merkle.Digest{}, err
	}
	if network != transaction.Network {
		return merkle.Digest{}, errors.Wrapf(fault.ErrWrongNetwork, "expected: %s  actual: %s", network, transaction.Network)
	}
	return storage.StoreTransaction(packed)
}

func showRecord(s string, verbose bool) (*decodedRecord, error) {
	var link merkle.Digest
	if err := link.UnmarshalText([]byte(s)); nil != err {
		return nil, err
	}

	transaction, err := storage.LoadTransaction(link)
	if nil != err {
		return nil, err
	}

	packed, err := transaction.Pack()
	if nil != err {
		return nil, err
	}

	// repacking zeroes reserved fields so keep the archived link
	record := makeDecodedRecord(packed, transaction, verbose)
	record.Link = link
	return record, nil
}

// all links, or only those of the named types
func listRecords(names []string) ([]merkle.Digest, error) {
	if 0 == len(names) {
		links := []merkle.Digest(nil)
		err := storage.List(func(link merkle.Digest, packed transactionrecord.Packed) error {
			links = append(links, link)
			return nil
		})
		return links, err
	}

	links := []merkle.Digest(nil)
	for _, name := range names {
		tag, ok := transactionrecord.TagFromName(name)
		if !ok {
			return nil, errors.Wrapf(fault.ErrUnknownTransactionType, "name: %q", name)
		}
		l, err := storage.ListByType(tag)
		if nil != err {
			return nil, err
		}
		links = append(links, l...)
	}
	return links, nil
}
