// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/fault"
	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/wire"
)

// NetworkType - network identifier byte
type NetworkType uint8

// known networks
const (
	MijinNetwork     = NetworkType(0x60)
	MijinTestNetwork = NetworkType(0x90)
	MainNetwork      = NetworkType(0x68)
	TestNetwork      = NetworkType(0x98)
)

var networkNames = map[NetworkType]string{
	MijinNetwork:     "mijin",
	MijinTestNetwork: "mijin_test",
	MainNetwork:      "main_net",
	TestNetwork:      "test_net",
}

// IsValid - true for a known network
func (network NetworkType) IsValid() bool {
	_, ok := networkNames[network]
	return ok
}

// String - the network name
func (network NetworkType) String() string {
	if s, ok := networkNames[network]; ok {
		return s
	}
	return fmt.Sprintf("*unknown(0x%02x)*", uint8(network))
}

// MarshalText - network by name for JSON
func (network NetworkType) MarshalText() ([]byte, error) {
	return []byte(network.String()), nil
}

// UnmarshalText - network from its name
func (network *NetworkType) UnmarshalText(s []byte) error {
	n, err := NetworkFromName(string(s))
	if nil != err {
		return err
	}
	*network = n
	return nil
}

// NetworkFromName - case insensitive lookup of a network name
func NetworkFromName(name string) (NetworkType, error) {
	name = strings.ToLower(name)
	for network, s := range networkNames {
		if s == name {
			return network, nil
		}
	}
	return 0, fault.ErrInvalidNetworkName
}

// MosaicSupplyChangeAction - direction of a supply change
type MosaicSupplyChangeAction uint8

// supply change actions
const (
	SupplyDecrease = MosaicSupplyChangeAction(0)
	SupplyIncrease = MosaicSupplyChangeAction(1)
)

// String - action name
func (action MosaicSupplyChangeAction) String() string {
	switch action {
	case SupplyDecrease:
		return "decrease"
	case SupplyIncrease:
		return "increase"
	default:
		return fmt.Sprintf("*unknown(%d)*", uint8(action))
	}
}

// MarshalText - action by name for JSON
func (action MosaicSupplyChangeAction) MarshalText() ([]byte, error) {
	return []byte(action.String()), nil
}

func (action MosaicSupplyChangeAction) isValid() bool {
	return action <= SupplyIncrease
}

// AliasAction - link or unlink a namespace alias
type AliasAction uint8

// alias actions
const (
	AliasUnlink = AliasAction(0)
	AliasLink   = AliasAction(1)
)

// String - action name
func (action AliasAction) String() string {
	switch action {
	case AliasUnlink:
		return "unlink"
	case AliasLink:
		return "link"
	default:
		return fmt.Sprintf("*unknown(%d)*", uint8(action))
	}
}

// MarshalText - action by name for JSON
func (action AliasAction) MarshalText() ([]byte, error) {
	return []byte(action.String()), nil
}

func (action AliasAction) isValid() bool {
	return action <= AliasLink
}

// LinkAction - link or unlink a remote account
type LinkAction uint8

// link actions
const (
	Unlink = LinkAction(0)
	Link   = LinkAction(1)
)

// String - action name
func (action LinkAction) String() string {
	switch action {
	case Unlink:
		return "unlink"
	case Link:
		return "link"
	default:
		return fmt.Sprintf("*unknown(%d)*", uint8(action))
	}
}

// MarshalText - action by name for JSON
func (action LinkAction) MarshalText() ([]byte, error) {
	return []byte(action.String()), nil
}

func (action LinkAction) isValid() bool {
	return action <= Link
}

// LockHashAlgorithm - hash applied to a secret lock proof
type LockHashAlgorithm uint8

// supported algorithms
const (
	HashSha3_256   = LockHashAlgorithm(0)
	HashKeccak_256 = LockHashAlgorithm(1)
	HashHash_160   = LockHashAlgorithm(2)
	HashHash_256   = LockHashAlgorithm(3)
)

// String - algorithm name
func (algorithm LockHashAlgorithm) String() string {
	switch algorithm {
	case HashSha3_256:
		return "sha3_256"
	case HashKeccak_256:
		return "keccak_256"
	case HashHash_160:
		return "hash_160"
	case HashHash_256:
		return "hash_256"
	default:
		return fmt.Sprintf("*unknown(%d)*", uint8(algorithm))
	}
}

// MarshalText - algorithm by name for JSON
func (algorithm LockHashAlgorithm) MarshalText() ([]byte, error) {
	return []byte(algorithm.String()), nil
}

func (algorithm LockHashAlgorithm) isValid() bool {
	return algorithm <= HashHash_256
}

// NamespaceRegistrationType - root or child namespace
type NamespaceRegistrationType uint8

// registration types
const (
	RootNamespace  = NamespaceRegistrationType(0)
	ChildNamespace = NamespaceRegistrationType(1)
)

// String - registration type name
func (registrationType NamespaceRegistrationType) String() string {
	switch registrationType {
	case RootNamespace:
		return "root"
	case ChildNamespace:
		return "child"
	default:
		return fmt.Sprintf("*unknown(%d)*", uint8(registrationType))
	}
}

// MarshalText - registration type by name for JSON
func (registrationType NamespaceRegistrationType) MarshalText() ([]byte, error) {
	return []byte(registrationType.String()), nil
}

func (registrationType NamespaceRegistrationType) isValid() bool {
	return registrationType <= ChildNamespace
}

// read a one byte closed enumeration
//
// a value outside the enumeration is an error, never a default
func readEnum[T ~uint8](r *wire.Reader, valid func(T) bool, unknown error) (T, error) {
	b, err := r.Uint8()
	if nil != err {
		return 0, err
	}
	value := T(b)
	if !valid(value) {
		return 0, errors.Wrapf(unknown, "value: %d", b)
	}
	return value, nil
}
