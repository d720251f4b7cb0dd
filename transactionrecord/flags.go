// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"fmt"
	"strings"
)

// flag sets are open bitmasks: bits without a name are kept as they
// are and packed back unchanged, they are never an error

// MosaicFlags - properties of a mosaic definition
type MosaicFlags uint8

// mosaic flag bits
const (
	MosaicFlagNone          = MosaicFlags(0x00)
	MosaicFlagSupplyMutable = MosaicFlags(0x01)
	MosaicFlagTransferable  = MosaicFlags(0x02)
	MosaicFlagRestrictable  = MosaicFlags(0x04)

	MosaicFlagsAll = MosaicFlagSupplyMutable | MosaicFlagTransferable | MosaicFlagRestrictable
)

var mosaicFlagNames = []flagName{
	{uint64(MosaicFlagSupplyMutable), "SupplyMutable"},
	{uint64(MosaicFlagTransferable), "Transferable"},
	{uint64(MosaicFlagRestrictable), "Restrictable"},
}

// Has - true if every bit of flag is set
func (flags MosaicFlags) Has(flag MosaicFlags) bool {
	return flag == flags&flag
}

// Unknown - the bits that have no name
func (flags MosaicFlags) Unknown() MosaicFlags {
	return flags &^ MosaicFlagsAll
}

// String - names joined by '|', unknown bits in hex
func (flags MosaicFlags) String() string {
	return formatFlags(uint64(flags), mosaicFlagNames)
}

// AccountRestrictionFlags - kind and direction of an account restriction
type AccountRestrictionFlags uint16

// account restriction flag bits
const (
	RestrictionFlagAddress         = AccountRestrictionFlags(0x0001)
	RestrictionFlagMosaicId        = AccountRestrictionFlags(0x0002)
	RestrictionFlagTransactionType = AccountRestrictionFlags(0x0004)
	RestrictionFlagOutgoing        = AccountRestrictionFlags(0x4000)
	RestrictionFlagBlock           = AccountRestrictionFlags(0x8000)

	RestrictionFlagsAll = RestrictionFlagAddress | RestrictionFlagMosaicId | RestrictionFlagTransactionType | RestrictionFlagOutgoing | RestrictionFlagBlock
)

var restrictionFlagNames = []flagName{
	{uint64(RestrictionFlagAddress), "Address"},
	{uint64(RestrictionFlagMosaicId), "MosaicId"},
	{uint64(RestrictionFlagTransactionType), "TransactionType"},
	{uint64(RestrictionFlagOutgoing), "Outgoing"},
	{uint64(RestrictionFlagBlock), "Block"},
}

// Has - true if every bit of flag is set
func (flags AccountRestrictionFlags) Has(flag AccountRestrictionFlags) bool {
	return flag == flags&flag
}

// Unknown - the bits that have no name
func (flags AccountRestrictionFlags) Unknown() AccountRestrictionFlags {
	return flags &^ RestrictionFlagsAll
}

// String - names joined by '|', unknown bits in hex
func (flags AccountRestrictionFlags) String() string {
	return formatFlags(uint64(flags), restrictionFlagNames)
}

type flagName struct {
	bit  uint64
	name string
}

func formatFlags(value uint64, names []flagName) string {
	if 0 == value {
		return "None"
	}
	s := make([]string, 0, len(names)+1)
	for _, n := range names {
		if 0 != value&n.bit {
			s = append(s, n.name)
			value &^= n.bit
		}
	}
	if 0 != value {
		s = append(s, fmt.Sprintf("0x%x", value))
	}
	return strings.Join(s, "|")
}
