// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package fakerepo

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/momeni/rental-fleet/pkg/core/model"
	"github.com/momeni/rental-fleet/pkg/core/repo"
)

// BlockedPeriods is the in-memory implementation of
// repo.BlockedPeriods.
type BlockedPeriods struct {
}

// NewBlockedPeriods instantiates an in-memory blocked periods
// repository.
func NewBlockedPeriods() *BlockedPeriods {
	return &BlockedPeriods{}
}

type blocksQueryer struct {
	store *Store
}

func (blocks *BlockedPeriods) Conn(
	c repo.Conn,
) repo.BlockedPeriodsConnQueryer {
	return blocksQueryer{store: storeOf(c)}
}

func (blocks *BlockedPeriods) Tx(
	tx repo.Tx,
) repo.BlockedPeriodsTxQueryer {
	return blocksQueryer{store: storeOf(tx)}
}

func sortBlocks(bs []model.BlockedPeriod) {
	sort.Slice(bs, func(i, j int) bool {
		if !bs[i].StartDate.Equal(bs[j].StartDate) {
			return bs[i].StartDate.Before(bs[j].StartDate)
		}
		return bs[i].ID.String() < bs[j].ID.String()
	})
}

func (q blocksQueryer) FindByVehicle(
	_ context.Context, vid uuid.UUID,
) ([]model.BlockedPeriod, error) {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()
	var bs []model.BlockedPeriod
	for _, b := range q.store.blocks {
		if b.VehicleID == vid {
			bs = append(bs, b)
		}
	}
	sortBlocks(bs)
	return bs, nil
}

func (q blocksQueryer) FindOverlapping(
	_ context.Context, vid uuid.UUID, start, end time.Time,
) ([]model.BlockedPeriod, error) {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()
	var bs []model.BlockedPeriod
	for _, b := range q.store.blocks {
		// inclusive boundaries, matching the SQL implementation
		if b.VehicleID == vid &&
			!b.StartDate.After(end) && !b.EndDate.Before(start) {
			bs = append(bs, b)
		}
	}
	sortBlocks(bs)
	return bs, nil
}

func (q blocksQueryer) FindActive(
	_ context.Context, today time.Time,
) ([]model.BlockedPeriod, error) {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()
	var bs []model.BlockedPeriod
	for _, b := range q.store.blocks {
		if !b.EndDate.Before(today) {
			bs = append(bs, b)
		}
	}
	sortBlocks(bs)
	return bs, nil
}

func (q blocksQueryer) Create(
	_ context.Context, b *model.BlockedPeriod,
) error {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()
	q.store.blocks[b.ID.String()] = *b
	return nil
}

func (q blocksQueryer) DeleteByVehicle(
	_ context.Context, vid uuid.UUID,
) (int64, error) {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()
	var count int64
	for id, b := range q.store.blocks {
		if b.VehicleID == vid {
			delete(q.store.blocks, id)
			count++
		}
	}
	return count, nil
}

func (q blocksQueryer) DeleteByID(
	_ context.Context, bid uuid.UUID,
) (int64, error) {
	q.store.mu.Lock()
	defer q.store.mu.Unlock()
	if _, ok := q.store.blocks[bid.String()]; !ok {
		return 0, nil
	}
	delete(q.store.blocks, bid.String())
	return 1, nil
}
