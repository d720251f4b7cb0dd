// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/marshalutil"

	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/fault"
	"github.com/ravitej-aluru/nem2-e2e-tests-sub000/wire"
)

// NamespaceRegistration - register a root or child namespace
//
// a root namespace carries a duration, a child carries its parent;
// setting the other field is an error when packing
type NamespaceRegistration struct {
	RegistrationType NamespaceRegistrationType `json:"registrationType"`
	Duration         BlockDuration             `json:"duration,string,omitempty"`
	ParentId         NamespaceId               `json:"parentId,string,omitempty"`
	Id               NamespaceId               `json:"id,string"`
	Name             string                    `json:"name"`
}

// duration or parent + id + type + name length
const namespaceRegistrationFixedSize = 8 + namespaceIdSize + 1 + 1

// NewRootNamespace - registration of a top level namespace
func NewRootNamespace(name string, id NamespaceId, duration BlockDuration) *NamespaceRegistration {
	return &NamespaceRegistration{
		RegistrationType: RootNamespace,
		Duration:         duration,
		Id:               id,
		Name:             name,
	}
}

// NewChildNamespace - registration of a sub-namespace of parent
func NewChildNamespace(name string, id NamespaceId, parent NamespaceId) *NamespaceRegistration {
	return &NamespaceRegistration{
		RegistrationType: ChildNamespace,
		ParentId:         parent,
		Id:               id,
		Name:             name,
	}
}

// Type - namespace registration tag
func (registration *NamespaceRegistration) Type() TagType {
	return NamespaceRegistrationTag
}

// Size - packed body size
func (registration *NamespaceRegistration) Size() int {
	return namespaceRegistrationFixedSize + len(registration.Name)
}

func (registration *NamespaceRegistration) pack(marshalUtil *marshalutil.MarshalUtil) error {
	switch registration.RegistrationType {
	case RootNamespace:
		if 0 != registration.ParentId {
			return errors.Wrapf(fault.ErrInactiveNamespaceField, "root namespace with parent: %d", registration.ParentId)
		}
		marshalUtil.WriteUint64(uint64(registration.Duration))
	case ChildNamespace:
		if 0 != registration.Duration {
			return errors.Wrapf(fault.ErrInactiveNamespaceField, "child namespace with duration: %d", registration.Duration)
		}
		marshalUtil.WriteUint64(uint64(registration.ParentId))
	default:
		return errors.Wrapf(fault.ErrUnknownRegistrationType, "value: %d", registration.RegistrationType)
	}
	marshalUtil.WriteUint64(uint64(registration.Id))
	marshalUtil.WriteByte(byte(registration.RegistrationType))
	return wire.WritePrefixedBytes(marshalUtil, wire.Prefix8, []byte(registration.Name))
}

func unpackNamespaceRegistration(r *wire.Reader) (Body, error) {
	durationOrParent, err := r.Uint64()
	if nil != err {
		return nil, err
	}
	id, err := r.Uint64()
	if nil != err {
		return nil, err
	}
	registrationType, err := readEnum(r, NamespaceRegistrationType.isValid, fault.ErrUnknownRegistrationType)
	if nil != err {
		return nil, err
	}
	name, err := wire.ReadPrefixedBytes(r, wire.Prefix8)
	if nil != err {
		return nil, errors.Wrap(err, "name")
	}

	if RootNamespace == registrationType {
		return NewRootNamespace(string(name), NamespaceId(id), BlockDuration(durationOrParent)), nil
	}
	return NewChildNamespace(string(name), NamespaceId(id), NamespaceId(durationOrParent)), nil
}
