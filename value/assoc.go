package value

import (
	"sort"

	"github.com/tifv/exchange-desynced/errs"
)

// ItemKind identifies what an associative-table cell currently holds.
type ItemKind uint8

const (
	// ItemEmpty is a cell that has never held an entry.
	ItemEmpty ItemKind = iota
	// ItemDead is a tombstone preserving chain continuity
	// (spec.md §3/§4.5).
	ItemDead
	// ItemLive holds a key and, optionally, a value.
	ItemLive
)

// AssocItem is one cell of the associative part (spec.md §3's
// AssocItem, flattened with the "empty" case the wire format also
// represents explicitly).
type AssocItem struct {
	Kind ItemKind
	Key  Key
	// HasValue and Value only apply when Kind == ItemLive: the value
	// itself is optional, per spec.md §3 ("value: Option<Value>"),
	// distinct from Value itself being Nil.
	HasValue bool
	Value    Value
	// Link is the signed cell offset to the next cell in this item's
	// collision chain, 0 meaning end-of-chain. Valid for ItemDead and
	// ItemLive.
	Link int32
}

// AssocTable is the power-of-two open-addressed associative part of a
// Table (spec.md §3, §4.5).
type AssocTable struct {
	items    []AssocItem
	loglen   uint8
	hasAssoc bool
	lastFree uint32
	// wireExact records whether items holds positions read verbatim off
	// the wire (TableLoadBuilder) as opposed to positions this module
	// chose itself (TableBuilder). Table.AssocCells uses it to decide
	// between dump_iter and sorted_iter (spec.md §4.5).
	wireExact bool
}

// NewAssocTable allocates an associative table of size 2^loglen, or an
// empty one if hasAssoc is false (spec.md's "loglen absent means empty
// table").
func NewAssocTable(loglen uint8, hasAssoc bool) *AssocTable {
	size := 0
	if hasAssoc {
		size = 1 << loglen
	}
	return &AssocTable{
		items:    make([]AssocItem, size),
		loglen:   loglen,
		hasAssoc: hasAssoc,
		lastFree: uint32(size),
	}
}

// WireExact reports whether a's cell positions were read verbatim off
// the wire (built via TableLoadBuilder) as opposed to chosen by this
// module's own insertion algorithm (built via TableBuilder).
func (a *AssocTable) WireExact() bool {
	return a.wireExact
}

// LogLen returns the table's loglen and whether it has an associative
// part at all.
func (a *AssocTable) LogLen() (uint8, bool) {
	return a.loglen, a.hasAssoc
}

// Len returns the associative capacity (2^loglen, or 0).
func (a *AssocTable) Len() int {
	return len(a.items)
}

// LastFree returns the current value of the descending free-cell
// cursor.
func (a *AssocTable) LastFree() uint32 {
	return a.lastFree
}

// Iter returns the cells in natural (cell-index) order.
func (a *AssocTable) Iter() []AssocItem {
	out := make([]AssocItem, len(a.items))
	copy(out, a.items)
	return out
}

// SortedIter returns the cells sorted by key, with empty and Dead
// cells comparing equal-least (spec.md §4.5's "stable sort by key").
// It is used when dumping a table that was built programmatically and
// so has no wire-exact cell positions to preserve.
func (a *AssocTable) SortedIter() []AssocItem {
	out := a.Iter()
	sort.SliceStable(out, func(i, j int) bool {
		ki, iLive := liveKey(out[i])
		kj, jLive := liveKey(out[j])
		switch {
		case !iLive && !jLive:
			return false
		case !iLive:
			return true
		case !jLive:
			return false
		default:
			return ki.Less(kj)
		}
	})
	return out
}

func liveKey(item AssocItem) (Key, bool) {
	if item.Kind != ItemLive {
		return Key{}, false
	}
	return item.Key, true
}

// DumpIter returns the cells in natural order together with the
// header metadata needed to emit the wire-exact associative part
// unchanged (spec.md §4.5's dump_iter).
func (a *AssocTable) DumpIter() (items []AssocItem, loglen uint8, hasAssoc bool, lastFree uint32) {
	return a.Iter(), a.loglen, a.hasAssoc, a.lastFree
}

// Canonicalize rebuilds a from its live entries in sorted-key order,
// re-running them through a fresh TableBuilder at the same
// loglen/hasAssoc. A table built programmatically (TableBuilder) has
// no wire-given cell positions of its own, only whatever the host's
// insertion order happened to produce; re-inserting in canonical
// order reproduces the same hash/collision algorithm deterministically,
// so two logically-identical tables with different insertion history
// dump to identical bytes (spec.md §4.5's sorted_iter). Dead cells are
// dropped: they are load-only tombstones and carry no meaning for a
// table that was never read off the wire.
func (a *AssocTable) Canonicalize() *AssocTable {
	b := NewTableBuilder(a.loglen, a.hasAssoc)
	for _, item := range a.SortedIter() {
		if item.Kind != ItemLive {
			continue
		}
		b.Insert(item.Key, item.Value, item.HasValue)
	}
	return b.Build()
}

// mainPositionOf returns the main position an item's key hashes to,
// for Live items, or (for Dead/Empty cells) the fallback spec.md §4.5
// specifies: "treat as self"/unknown.
func (a *AssocTable) mainPositionOf(index uint32, item AssocItem) (int64, bool) {
	switch item.Kind {
	case ItemLive:
		return int64(item.Key.position(a.loglen)), true
	case ItemDead:
		return int64(index), true
	default:
		return -1, false
	}
}

// ValidatePositions proves the on-disk layout is a legal chain
// topology (spec.md §4.5), ported directly from assoc.rs's
// validate_positions: every chain root must be a cell at its own main
// position, every cell must be reachable from exactly one chain, every
// link must stay in bounds, and no chain may loop.
func (a *AssocTable) ValidatePositions() error {
	if !a.hasAssoc {
		return nil
	}
	length := len(a.items)
	unvalidated := make([]int64, length)
	for idx, item := range a.items {
		if pos, ok := a.mainPositionOf(uint32(idx), item); ok {
			unvalidated[idx] = pos
		} else {
			unvalidated[idx] = -1
		}
	}
	for mainPosition := 0; mainPosition < length; mainPosition++ {
		if unvalidated[mainPosition] != int64(mainPosition) {
			// chain root is not in its main position: no chain is
			// rooted here.
			continue
		}
		position := uint32(mainPosition)
		steps := 0
		for {
			idx := position
			if unvalidated[idx] == int64(mainPosition) {
				unvalidated[idx] = -1
			}
			item := a.items[idx]
			if item.Kind == ItemEmpty || item.Link == 0 {
				break
			}
			next := int64(idx) + int64(item.Link)
			if next < 0 || next >= int64(length) {
				return errs.ErrLinkOutOfBounds
			}
			position = uint32(next)
			steps++
			if steps >= length {
				return errs.ErrChainLoop
			}
		}
	}
	for position := 0; position < length; position++ {
		if unvalidated[position] != -1 {
			return errs.ErrKeyNotAtValidPosition
		}
	}
	return nil
}

func relocateItem(item AssocItem, oldIndex, newIndex uint32) AssocItem {
	if item.Kind == ItemEmpty {
		return item
	}
	if item.Link != 0 {
		item.Link += int32(oldIndex) - int32(newIndex)
	}
	return item
}

func relocateLink(item *AssocItem, oldIndex, newIndex uint32) {
	if item.Kind == ItemEmpty {
		return
	}
	if item.Link != 0 {
		item.Link += int32(newIndex) - int32(oldIndex)
	}
}

// pendingItem mirrors assoc.rs's InsertItem enum: the item a
// TableBuilder insertion is about to place, before it has been
// assigned a link.
type pendingItem struct {
	dead         bool
	deadPosition uint32
	key          Key
	value        Value
	hasValue     bool
}

func (p pendingItem) position(loglen uint8) uint32 {
	if p.dead {
		return p.deadPosition & mask(loglen)
	}
	return p.key.position(loglen)
}

func (p pendingItem) toItem(link int32) AssocItem {
	if p.dead {
		return AssocItem{Kind: ItemDead, Link: link}
	}
	return AssocItem{Kind: ItemLive, Key: p.key, Value: p.value, HasValue: p.hasValue, Link: link}
}

// TableBuilder constructs an AssocTable from host data, Lua-5.4-style
// closed hashing with signed-offset chaining (spec.md §4.5,
// "Programmatic insertion").
type TableBuilder struct {
	table *AssocTable
}

// NewTableBuilder starts building a table of the given size. The
// caller must size the table first: Insert panics if no free cell
// remains, exactly as assoc.rs's TableBuilder does.
func NewTableBuilder(loglen uint8, hasAssoc bool) *TableBuilder {
	return &TableBuilder{table: NewAssocTable(loglen, hasAssoc)}
}

// Build returns the constructed table. Its cell positions were chosen
// by this module's own insertion algorithm, not read off any wire, so
// AssocCells must canonicalize them (sorted_iter) rather than dump
// them as-is.
func (b *TableBuilder) Build() *AssocTable {
	b.table.wireExact = false
	return b.table
}

// Insert places a live key/value entry.
func (b *TableBuilder) Insert(key Key, value Value, hasValue bool) {
	b.insertItem(pendingItem{key: key, value: value, hasValue: hasValue})
}

// InsertDead places a tombstone at the cell key's main position would
// hash to. Unlike Lua, dead cells are never overwritten by later
// inserts (spec.md §4.5/§9); a later insert that collides with one
// moves it to a free cell instead. The tombstone stays in the built
// table (Iter, ValidatePositions), but Table.AssocCells canonicalizes
// a built table before dumping it, and Canonicalize drops dead cells,
// so tombstones placed here are not written to the wire. The loader
// does not use this method: it places dead cells through
// TableLoadBuilder.
func (b *TableBuilder) InsertDead(key Key) {
	loglen, _ := b.table.LogLen()
	b.insertItem(pendingItem{dead: true, deadPosition: key.position(loglen)})
}

func (b *TableBuilder) insertItem(item pendingItem) {
	loglen, _ := b.table.LogLen()
	mainIndex := item.position(loglen)

	if b.table.items[mainIndex].Kind == ItemEmpty {
		b.table.items[mainIndex] = item.toItem(0)
		return
	}

	freeIndex, ok := b.findFreeIndex()
	if !ok {
		panic("the table should have free space")
	}

	occupant := b.table.items[mainIndex]
	otherIndex := mainIndex
	if occupant.Kind == ItemLive {
		otherIndex = occupant.Key.position(loglen)
	}

	if otherIndex == mainIndex {
		link := int32(freeIndex) - int32(mainIndex)
		b.table.items[freeIndex] = relocateItem(occupant, mainIndex, freeIndex)
		b.table.items[mainIndex] = item.toItem(link)
		return
	}

	prevIndex := otherIndex
	for {
		prev := b.table.items[prevIndex]
		if prev.Link == 0 {
			panic("table invariant is broken")
		}
		next := int64(prevIndex) + int64(prev.Link)
		if next < 0 || next >= int64(len(b.table.items)) {
			panic("integer overflow")
		}
		nextIndex := uint32(next)
		if nextIndex == mainIndex {
			break
		}
		prevIndex = nextIndex
	}

	b.table.items[freeIndex] = relocateItem(occupant, mainIndex, freeIndex)
	b.table.items[mainIndex] = item.toItem(0)
	relocateLink(&b.table.items[prevIndex], mainIndex, freeIndex)
}

func (b *TableBuilder) findFreeIndex() (uint32, bool) {
	for b.table.lastFree > 0 {
		b.table.lastFree--
		if b.table.items[b.table.lastFree].Kind == ItemEmpty {
			return b.table.lastFree, true
		}
	}
	return 0, false
}

// TableLoadBuilder places items at explicit wire-given cell indices
// and validates the result (spec.md §4.5, "Load-time insertion").
type TableLoadBuilder struct {
	table *AssocTable
}

// NewTableLoadBuilder starts a load-time build of the given size.
func NewTableLoadBuilder(loglen uint8, hasAssoc bool) *TableLoadBuilder {
	return &TableLoadBuilder{table: NewAssocTable(loglen, hasAssoc)}
}

// Insert places item at the given wire cell index. Inserting twice at
// the same index is a programmer/loader error.
func (b *TableLoadBuilder) Insert(index uint32, item AssocItem) error {
	if b.table.items[index].Kind != ItemEmpty {
		return errs.ErrDuplicateCellIndex
	}
	b.table.items[index] = item
	return nil
}

// SetLastFree records the wire-given last_free cursor.
func (b *TableLoadBuilder) SetLastFree(lastFree uint32) {
	b.table.lastFree = lastFree
}

// Build runs full validation (the table-size and last_free checks of
// spec.md §4.5, then validate_positions) and returns the table. Its cell positions came
// straight from the wire, so AssocCells must dump it unchanged
// (dump_iter) to reproduce the original bytes.
func (b *TableLoadBuilder) Build() (*AssocTable, error) {
	if uint64(len(b.table.items)) > (uint64(1)<<32)-1 {
		return nil, errs.ErrTableTooLarge
	}
	if b.table.lastFree > uint32(len(b.table.items)) {
		return nil, errs.ErrLastFreeOutOfRange
	}
	if err := b.table.ValidatePositions(); err != nil {
		return nil, err
	}
	b.table.wireExact = true
	return b.table, nil
}
