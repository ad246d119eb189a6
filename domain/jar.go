package domain

import (
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/tonkeeper/tongo"
	"github.com/tonkeeper/tongo/tlb"
)

const (
	MaxDescriptionLen = 200
	MaxCategoryLen    = 100
	MaxMemoLen        = 100

	// Maximum number of tips kept in the history buffer. The buffer is a
	// bounded view of recent tips; TotalTipsCount and TotalReceived are the
	// source of truth for the aggregates.
	MaxHistoryLen = 100
)

type Visibility uint8

const (
	VisibilityPublic Visibility = iota
	VisibilityAnonymous
)

type Tip struct {
	Sender     tongo.AccountID
	Amount     tlb.Grams
	Visibility Visibility
	Memo       string
	Timestamp  time.Time
}

type TipJar struct {
	Owner          tongo.AccountID
	IsActive       bool
	IsPrivate      bool
	Description    string
	Category       string
	Goal           tlb.Grams
	TotalReceived  tlb.Grams
	TotalTipsCount uint32
	TipsHistory    []Tip
	LastTipIndex   uint16
}

// NewTipJar builds a freshly initialized jar record: active, zeroed
// aggregates, empty history.
func NewTipJar(owner tongo.AccountID, description, category string, goal tlb.Grams) (*TipJar, error) {
	if err := ValidateMetadata(description, category, goal); err != nil {
		return nil, err
	}

	return &TipJar{
		Owner:       owner,
		IsActive:    true,
		Description: description,
		Category:    category,
		Goal:        goal,
		TipsHistory: make([]Tip, 0, MaxHistoryLen),
	}, nil
}

func ValidateMetadata(description, category string, goal tlb.Grams) error {
	if goal == 0 {
		return ErrorInvalidGoal
	}
	if len(description) > MaxDescriptionLen {
		return ErrorDescriptionTooLong
	}
	if len(category) > MaxCategoryLen {
		return ErrorCategoryTooLong
	}
	return nil
}

func (jar *TipJar) IsOwner(caller tongo.AccountID) bool {
	return caller == jar.Owner
}

func (jar *TipJar) GoalReached() bool {
	return jar.TotalReceived >= jar.Goal
}

// RecordTip inserts the tip into the history buffer. While the buffer is
// filling up it appends and leaves the cursor alone; once full it overwrites
// the slot at LastTipIndex and advances the cursor modulo the capacity, so
// the oldest entries are evicted in insertion order. After a wraparound the
// storage order is no longer chronological; callers needing chronology must
// sort by the tip timestamps.
func (jar *TipJar) RecordTip(tip Tip) {
	if len(jar.TipsHistory) < MaxHistoryLen {
		jar.TipsHistory = append(jar.TipsHistory, tip)
		return
	}

	jar.TipsHistory[jar.LastTipIndex] = tip
	jar.LastTipIndex = (jar.LastTipIndex + 1) % MaxHistoryLen
}

// HistoryPage slices the history in storage order. Out-of-range pages yield
// an empty slice rather than an error.
func (jar *TipJar) HistoryPage(page, pageSize int) []Tip {
	if page < 0 || pageSize <= 0 {
		return []Tip{}
	}

	// Division first keeps the start offset from overflowing on a huge page
	// number.
	if page > len(jar.TipsHistory)/pageSize {
		return []Tip{}
	}

	start := page * pageSize
	if start >= len(jar.TipsHistory) {
		return []Tip{}
	}

	end := start + pageSize
	if end > len(jar.TipsHistory) {
		end = len(jar.TipsHistory)
	}
	return jar.TipsHistory[start:end]
}

// ClearHistory empties the buffer and resets the cursor. TotalTipsCount is
// untouched: it counts every tip ever accepted, not what the buffer retains.
func (jar *TipJar) ClearHistory() {
	jar.TipsHistory = jar.TipsHistory[:0]
	jar.LastTipIndex = 0
}

// JarAddress derives the stable storage address of an owner's jar from the
// owner identity and a fixed discriminator.
func JarAddress(owner tongo.AccountID) tongo.AccountID {
	h := sha256.New()
	h.Write([]byte(imageDiscriminator))

	var wc [4]byte
	binary.LittleEndian.PutUint32(wc[:], uint32(owner.Workchain))
	h.Write(wc[:])
	h.Write(owner.Address[:])

	var addr tongo.Bits256
	copy(addr[:], h.Sum(nil))
	return *tongo.NewAccountId(0, addr)
}
