// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/merkle"
)

// TagType - type code for transactions
type TagType uint16

// enumerate the possible transaction record types
// this is encoded as a little endian uint16 in the header
const (
	AccountLinkTag                 = TagType(0x414c) // 16716
	TransferTag                    = TagType(0x4154) // 16724
	MultisigAccountModificationTag = TagType(0x4155) // 16725
	AggregateCompleteTag           = TagType(0x4141) // 16705
	AggregateBondedTag             = TagType(0x4241) // 16961
	HashLockTag                    = TagType(0x4148) // 16712
	SecretLockTag                  = TagType(0x4152) // 16722
	SecretProofTag                 = TagType(0x4252) // 16978
	MosaicDefinitionTag            = TagType(0x414d) // 16717
	MosaicSupplyChangeTag          = TagType(0x424d) // 16973
	NamespaceRegistrationTag       = TagType(0x414e) // 16718
	AddressAliasTag                = TagType(0x424e) // 16974
	MosaicAliasTag                 = TagType(0x434e) // 17230
	AccountAddressRestrictionTag   = TagType(0x4150) // 16720
	AccountMosaicRestrictionTag    = TagType(0x4250) // 16976
	AccountOperationRestrictionTag = TagType(0x4350) // 17232
)

var tagNames = map[TagType]string{
	AccountLinkTag:                 "AccountLink",
	TransferTag:                    "Transfer",
	MultisigAccountModificationTag: "MultisigAccountModification",
	AggregateCompleteTag:           "AggregateComplete",
	AggregateBondedTag:             "AggregateBonded",
	HashLockTag:                    "HashLock",
	SecretLockTag:                  "SecretLock",
	SecretProofTag:                 "SecretProof",
	MosaicDefinitionTag:            "MosaicDefinition",
	MosaicSupplyChangeTag:          "MosaicSupplyChange",
	NamespaceRegistrationTag:       "NamespaceRegistration",
	AddressAliasTag:                "AddressAlias",
	MosaicAliasTag:                 "MosaicAlias",
	AccountAddressRestrictionTag:   "AccountAddressRestriction",
	AccountMosaicRestrictionTag:    "AccountMosaicRestriction",
	AccountOperationRestrictionTag: "AccountOperationRestriction",
}

// IsKnown - true if the tag selects a body layout
func (tag TagType) IsKnown() bool {
	_, ok := tagNames[tag]
	return ok
}

// IsAggregate - true for both aggregate kinds
func (tag TagType) IsAggregate() bool {
	return AggregateCompleteTag == tag || AggregateBondedTag == tag
}

// String - name of the transaction type
func (tag TagType) String() string {
	if s, ok := tagNames[tag]; ok {
		return s
	}
	return fmt.Sprintf("*unknown(0x%04x)*", uint16(tag))
}

// TagFromName - find a tag by its name, ignoring case
func TagFromName(name string) (TagType, bool) {
	for tag, s := range tagNames {
		if strings.EqualFold(s, name) {
			return tag, true
		}
	}
	return 0, false
}

// MarshalText - render a tag by name for JSON
func (tag TagType) MarshalText() ([]byte, error) {
	return []byte(tag.String()), nil
}

// RecordName - returns the name of a transaction body as a string
func RecordName(record interface{}) (string, bool) {
	switch record.(type) {
	case *Transfer, Transfer:
		return "Transfer", true

	case *MosaicDefinition, MosaicDefinition:
		return "MosaicDefinition", true

	case *MosaicSupplyChange, MosaicSupplyChange:
		return "MosaicSupplyChange", true

	case *MosaicAlias, MosaicAlias:
		return "MosaicAlias", true

	case *AddressAlias, AddressAlias:
		return "AddressAlias", true

	case *NamespaceRegistration, NamespaceRegistration:
		return "NamespaceRegistration", true

	case *AccountAddressRestriction, AccountAddressRestriction:
		return "AccountAddressRestriction", true

	case *AccountMosaicRestriction, AccountMosaicRestriction:
		return "AccountMosaicRestriction", true

	case *AccountOperationRestriction, AccountOperationRestriction:
		return "AccountOperationRestriction", true

	case *MultisigAccountModification, MultisigAccountModification:
		return "MultisigAccountModification", true

	case *SecretLock, SecretLock:
		return "SecretLock", true

	case *SecretProof, SecretProof:
		return "SecretProof", true

	case *HashLock, HashLock:
		return "HashLock", true

	case *AccountLink, AccountLink:
		return "AccountLink", true

	case *Aggregate, Aggregate:
		return "Aggregate", true

	default:
		return "*unknown*", false
	}
}

// Packed - packed records are just a byte slice
type Packed []byte

// offsets of the type field
const (
	typeOffset         = HeaderSize - 2*8 - 2
	embeddedTypeOffset = EmbeddedHeaderSize - 2
)

// Type - returns the record type code of a packed top level
// transaction without decoding it
//
// the second result is false if the record is too short
func (record Packed) Type() (TagType, bool) {
	if len(record) < typeOffset+2 {
		return 0, false
	}
	return TagType(binary.LittleEndian.Uint16(record[typeOffset:])), true
}

// EmbeddedType - returns the record type code of a packed embedded
// transaction without decoding it
func (record Packed) EmbeddedType() (TagType, bool) {
	if len(record) < embeddedTypeOffset+2 {
		return 0, false
	}
	return TagType(binary.LittleEndian.Uint16(record[embeddedTypeOffset:])), true
}

// MakeLink - create a link (SHA3-256 digest) for a packed record
func (record Packed) MakeLink() merkle.Digest {
	return merkle.NewDigest(record)
}

// MarshalText - convert a packed to its hex JSON form
func (record Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(record))
	b := make([]byte, size)
	hex.Encode(b, record)
	return b, nil
}

// UnmarshalText - convert a packed from its hex JSON form
func (record *Packed) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	buffer := make([]byte, size)
	byteCount, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	*record = buffer[:byteCount]
	return nil
}
