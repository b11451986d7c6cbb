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

// Maintenances is the in-memory implementation of repo.Maintenances.
type Maintenances struct {
}

// NewMaintenances instantiates an in-memory maintenances repository.
func NewMaintenances() *Maintenances {
	return &Maintenances{}
}

type maintsQueryer struct {
	store *Store
}

func (maints *Maintenances) Conn(
	c repo.Conn,
) repo.MaintenancesConnQueryer {
	return maintsQueryer{store: storeOf(c)}
}

func (maints *Maintenances) Tx(
	tx repo.Tx,
) repo.MaintenancesTxQueryer {
	return maintsQueryer{store: storeOf(tx)}
}

func (q maintsQueryer) FindByID(
	_ context.Context, mid uuid.UUID,
) (*model.Maintenance, error) {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()
	m, ok := q.store.maints[mid.String()]
	if !ok {
		return nil, cerr.NotFound(
			fmt.Errorf("no maintenance record with id %s", mid),
		)
	}
	return &m, nil
}

func (q maintsQueryer) FindByVehicle(
	_ context.Context, vid uuid.UUID,
) ([]model.Maintenance, error) {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()
	var ms []model.Maintenance
	for _, m := range q.store.maints {
		if m.VehicleID == vid {
			ms = append(ms, m)
		}
	}
	sort.Slice(ms, func(i, j int) bool {
		if !ms[i].ServiceDate.Equal(ms[j].ServiceDate) {
			return ms[i].ServiceDate.After(ms[j].ServiceDate)
		}
		return ms[i].ID.String() < ms[j].ID.String()
	})
	return ms, nil
}

func (q maintsQueryer) Create(
	_ context.Context, m *model.Maintenance,
) error {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()
	q.store.maints[m.ID.String()] = *m
	return nil
}

func (q maintsQueryer) Update(
	_ context.Context, m *model.Maintenance,
) (*model.Maintenance, error) {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()
	if _, ok := q.store.maints[m.ID.String()]; !ok {
		return nil, cerr.NotFound(
			fmt.Errorf("no maintenance record with id %s", m.ID),
		)
	}
	q.store.maints[m.ID.String()] = *m
	mm := *m
	return &mm, nil
}

func (q maintsQueryer) DeleteByID(
	_ context.Context, mid uuid.UUID,
) error {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()
	delete(q.store.maints, mid.String())
	return nil
}
