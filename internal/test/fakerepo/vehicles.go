// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package fakerepo

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/momeni/rental-fleet/pkg/core/cerr"
	"github.com/momeni/rental-fleet/pkg/core/model"
	"github.com/momeni/rental-fleet/pkg/core/repo"
)

// Vehicles is the in-memory implementation of repo.Vehicles.
type Vehicles struct {
}

// NewVehicles instantiates an in-memory vehicles repository.
func NewVehicles() *Vehicles {
	return &Vehicles{}
}

type vehiclesQueryer struct {
	store *Store
}

func (vehicles *Vehicles) Conn(
	c repo.Conn,
) repo.VehiclesConnQueryer {
	return vehiclesQueryer{store: storeOf(c)}
}

func (vehicles *Vehicles) Tx(tx repo.Tx) repo.VehiclesTxQueryer {
	return vehiclesQueryer{store: storeOf(tx)}
}

func (q vehiclesQueryer) FindByID(
	_ context.Context, vid uuid.UUID,
) (*model.Vehicle, error) {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()
	v, ok := q.store.vehicles[vid.String()]
	if !ok {
		return nil, cerr.NotFound(
			fmt.Errorf("no vehicle with id %s", vid),
		)
	}
	return &v, nil
}

func (q vehiclesQueryer) LockByID(
	ctx context.Context, vid uuid.UUID,
) (*model.Vehicle, error) {
	return q.FindByID(ctx, vid)
}

func (q vehiclesQueryer) FindAll(
	_ context.Context,
) ([]model.Vehicle, error) {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()
	vs := make([]model.Vehicle, 0, len(q.store.vehicles))
	for _, v := range q.store.vehicles {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool {
		if vs[i].LicensePlate != vs[j].LicensePlate {
			return vs[i].LicensePlate < vs[j].LicensePlate
		}
		return vs[i].ID.String() < vs[j].ID.String()
	})
	return vs, nil
}

func (q vehiclesQueryer) Create(
	_ context.Context, v *model.Vehicle,
) error {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()
	q.store.vehicles[v.ID.String()] = *v
	return nil
}

func (q vehiclesQueryer) Update(
	_ context.Context, v *model.Vehicle,
) (*model.Vehicle, error) {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()
	if _, ok := q.store.vehicles[v.ID.String()]; !ok {
		return nil, cerr.NotFound(
			fmt.Errorf("no vehicle with id %s", v.ID),
		)
	}
	q.store.vehicles[v.ID.String()] = *v
	vv := *v
	return &vv, nil
}

func (q vehiclesQueryer) UpdateStatus(
	_ context.Context, vid uuid.UUID, status model.VehicleStatus,
) (*model.Vehicle, error) {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()
	v, ok := q.store.vehicles[vid.String()]
	if !ok {
		return nil, cerr.NotFound(
			fmt.Errorf("no vehicle with id %s", vid),
		)
	}
	v.Status = status
	q.store.vehicles[vid.String()] = v
	return &v, nil
}

func (q vehiclesQueryer) DeleteByID(
	_ context.Context, vid uuid.UUID,
) error {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()
	delete(q.store.vehicles, vid.String())
	return nil
}
