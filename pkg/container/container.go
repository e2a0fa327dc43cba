// Package container implements the three clause containers of spec.md
// §4.6 — Unprocessed, Passive, Active — and their shared event contract:
// exactly one addedEvent per insertion, and exactly one of
// removedEvent/selectedEvent per departure.
//
// Grounded on hashicorp-nomad's state-store pattern: an indexed
// go-memdb table for Unprocessed and for Passive (Active keeps a plain
// map, see active.go), with watch/notification responsibility
// factored out into pkg/event rather than memdb's own watch channels,
// since spec.md §5's single-threaded model has no use for
// channel-based blocking watches.
package container

import (
	"github.com/hashicorp/go-hclog"
	memdb "github.com/hashicorp/go-memdb"
	"github.com/satproofsys/termcore/pkg/event"
	"github.com/satproofsys/termcore/pkg/term"
)

const tableClauses = "clauses"

// record is the go-memdb row shape. IDString mirrors Clause.ID as plain
// text: go-memdb's field indexers reflect on exported struct fields, and
// a uuid.UUID's own String() method isn't visible to that reflection, so
// the container keeps a plain-string mirror solely for indexing.
type record struct {
	IDString string
	Clause   *term.Clause
	Priority uint64
	Seq      uint64
}

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			tableClauses: {
				Name: tableClauses,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "IDString"},
					},
					"priority": {
						Name:    "priority",
						Unique:  false,
						Indexer: &memdb.UintFieldIndex{Field: "Priority"},
					},
					"seq": {
						Name:    "seq",
						Unique:  false,
						Indexer: &memdb.UintFieldIndex{Field: "Seq"},
					},
				},
			},
		},
	}
}

// store is the go-memdb-backed substrate shared by Unprocessed and
// Passive. Active does not use it (see active.go): its O(1) size and
// removal requirement rules out a radix-tree-backed index.
type store struct {
	db    *memdb.MemDB
	bus   *event.Bus
	seq   uint64
	count int
	log   hclog.Logger
}

func newStore(logger hclog.Logger) *store {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		// Only a malformed schema can fail here; the schema above is
		// fixed at compile time (spec.md §7 class 3: programmer error).
		panic("container: invalid schema: " + err.Error())
	}
	return &store{db: db, bus: event.New(logger), log: logger}
}

func (s *store) insert(c *term.Clause, priority uint64) *record {
	s.seq++
	rec := &record{IDString: c.ID.String(), Clause: c, Priority: priority, Seq: s.seq}
	txn := s.db.Txn(true)
	if err := txn.Insert(tableClauses, rec); err != nil {
		txn.Abort()
		panic("container: insert failed: " + err.Error())
	}
	txn.Commit()
	s.count++
	s.bus.Publish(event.Added, c)
	return rec
}

// popBy removes and returns the first record GetReverse(index) yields —
// the highest value of index — or (nil, false) if the table is empty.
func (s *store) popBy(index string) (*record, bool) {
	return s.pop(index, true)
}

// popByAscending removes and returns the first record Get(index)
// yields — the lowest value of index.
func (s *store) popByAscending(index string) (*record, bool) {
	return s.pop(index, false)
}

func (s *store) pop(index string, reverse bool) (*record, bool) {
	txn := s.db.Txn(true)
	var it memdb.ResultIterator
	var err error
	if reverse {
		it, err = txn.GetReverse(tableClauses, index)
	} else {
		it, err = txn.Get(tableClauses, index)
	}
	if err != nil {
		txn.Abort()
		panic("container: index " + index + ": " + err.Error())
	}
	raw := it.Next()
	if raw == nil {
		txn.Abort()
		return nil, false
	}
	rec := raw.(*record)
	if err := txn.Delete(tableClauses, rec); err != nil {
		txn.Abort()
		panic("container: delete failed: " + err.Error())
	}
	txn.Commit()
	s.count--
	return rec, true
}

func (s *store) delete(rec *record) {
	txn := s.db.Txn(true)
	if err := txn.Delete(tableClauses, rec); err != nil {
		txn.Abort()
		panic("container: delete failed: " + err.Error())
	}
	txn.Commit()
	s.count--
}

// Subscribe registers h for kind, returning a Subscription the caller
// closes to stop receiving events (spec.md §4.6).
func (s *store) Subscribe(kind event.Kind, h event.Handler) *event.Subscription {
	return s.bus.Subscribe(kind, h)
}

func (s *store) Size() int     { return s.count }
func (s *store) IsEmpty() bool { return s.count == 0 }
