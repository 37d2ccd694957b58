package memory

import (
	"cmp"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/beikov/blaze-job/internal/hash"
	"github.com/beikov/blaze-job/internal/logger"
	"github.com/beikov/blaze-job/types"
)

// Record is one schedulable record held by the store.
type Record struct {
	// ID uniquely identifies the record within its type. Put assigns one
	// when it is zero.
	ID int64

	// TypeName is the concrete record type name, matching a partition
	// key's name.
	TypeName string

	// PartitionValue is the value of the partition key attribute, used
	// for numeric partition bucketing. Defaults to the record ID.
	PartitionValue string

	// ScheduleTime is when the record becomes due.
	ScheduleTime time.Time

	// LastExecutionTime is when the record last ran (zero if never).
	LastExecutionTime time.Time

	// State is the storage-native state value, i.e. the output of the
	// partition key's state value mapper. Must be comparable.
	State any
}

// Storage is a thread-safe in-memory record store.
//
// Records are grouped by type name in a concurrent map; each group guards
// its slice with its own lock so unrelated types never contend.
type Storage struct {
	logger  types.Logger
	records *xsync.Map[string, *recordGroup]
	nextID  atomic.Int64
}

type recordGroup struct {
	mu      sync.RWMutex
	records []Record
}

// Option configures a Storage.
type Option func(*Storage)

// WithLogger sets a logger.
func WithLogger(l types.Logger) Option {
	return func(s *Storage) {
		s.logger = l
	}
}

// New creates an empty in-memory record store.
//
// Returns:
//   - *Storage: Initialized store
func New(opts ...Option) *Storage {
	s := &Storage{
		logger:  logger.NewNop(),
		records: xsync.NewMap[string, *recordGroup](),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Put stores a record, assigning an ID when none is set.
//
// An empty PartitionValue defaults to the record ID, mirroring the default
// partition key attribute binding (the id attribute).
//
// Parameters:
//   - record: Record to store; replaces an existing record with the same type and ID
//
// Returns:
//   - int64: The record's ID
func (s *Storage) Put(record Record) int64 {
	if record.ID == 0 {
		record.ID = s.nextID.Add(1)
	}
	if record.PartitionValue == "" {
		record.PartitionValue = strconv.FormatInt(record.ID, 10)
	}

	group, _ := s.records.LoadOrCompute(record.TypeName, func() (*recordGroup, bool) {
		return &recordGroup{}, false
	})

	group.mu.Lock()
	defer group.mu.Unlock()

	for i := range group.records {
		if group.records[i].ID == record.ID {
			group.records[i] = record

			return record.ID
		}
	}
	group.records = append(group.records, record)

	return record.ID
}

// Get returns the record with the given type and ID.
func (s *Storage) Get(typeName string, id int64) (Record, bool) {
	group, ok := s.records.Load(typeName)
	if !ok {
		return Record{}, false
	}

	group.mu.RLock()
	defer group.mu.RUnlock()

	for _, r := range group.records {
		if r.ID == id {
			return r, true
		}
	}

	return Record{}, false
}

// SetState updates a record's storage-native state value.
//
// Returns:
//   - bool: Whether the record existed
func (s *Storage) SetState(typeName string, id int64, state any) bool {
	return s.update(typeName, id, func(r *Record) {
		r.State = state
	})
}

// MarkExecuted records an execution: the state is updated and the last
// execution time is set.
//
// Returns:
//   - bool: Whether the record existed
func (s *Storage) MarkExecuted(typeName string, id int64, at time.Time, state any) bool {
	return s.update(typeName, id, func(r *Record) {
		r.LastExecutionTime = at
		r.State = state
	})
}

func (s *Storage) update(typeName string, id int64, apply func(*Record)) bool {
	group, ok := s.records.Load(typeName)
	if !ok {
		return false
	}

	group.mu.Lock()
	defer group.mu.Unlock()

	for i := range group.records {
		if group.records[i].ID == id {
			apply(&group.records[i])

			return true
		}
	}

	return false
}

// Remove deletes a record.
//
// Returns:
//   - bool: Whether the record existed
func (s *Storage) Remove(typeName string, id int64) bool {
	group, ok := s.records.Load(typeName)
	if !ok {
		return false
	}

	group.mu.Lock()
	defer group.mu.Unlock()

	for i := range group.records {
		if group.records[i].ID == id {
			group.records = slices.Delete(group.records, i, i+1)

			return true
		}
	}

	return false
}

// Count returns the number of records stored for a type.
func (s *Storage) Count(typeName string) int {
	group, ok := s.records.Load(typeName)
	if !ok {
		return 0
	}

	group.mu.RLock()
	defer group.mu.RUnlock()

	return len(group.records)
}

// RecordsToProcess returns due records of the key's type within one
// numeric partition, ordered by schedule time.
//
// A record is due when its state equals the key's mapped StateNew value and
// its schedule time is not after now. With partitionCount > 1 only records
// whose partition value buckets into the requested partition are returned;
// a count below 2 disables bucketing.
//
// Parameters:
//   - key: Partition key naming the record type and state mapping
//   - partition: Numeric partition to fetch, in [0, partitionCount)
//   - partitionCount: Total number of numeric partitions
//   - limit: Maximum number of records (<= 0 means no limit)
//   - now: Due-time reference point
//
// Returns:
//   - []Record: Snapshot of matching records, oldest schedule first
func (s *Storage) RecordsToProcess(key types.PartitionKey, partition, partitionCount, limit int, now time.Time) []Record {
	group, ok := s.records.Load(key.Name)
	if !ok {
		return nil
	}

	wantState := key.StateValueMapper(types.StateNew)

	group.mu.RLock()
	var result []Record
	for _, r := range group.records {
		if r.State != wantState {
			continue
		}
		if r.ScheduleTime.After(now) {
			continue
		}
		if partitionCount > 1 && hash.Bucket(r.PartitionValue, partitionCount) != partition {
			continue
		}
		result = append(result, r)
	}
	group.mu.RUnlock()

	slices.SortFunc(result, func(a, b Record) int {
		if c := a.ScheduleTime.Compare(b.ScheduleTime); c != 0 {
			return c
		}

		return cmp.Compare(a.ID, b.ID)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}

	s.logger.Debug("records to process",
		"type", key.Name,
		"partition", partition,
		"count", len(result),
	)

	return result
}
