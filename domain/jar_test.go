package domain

import (
	"math"
	"testing"
	"time"

	"github.com/tonkeeper/tongo"
	"github.com/tonkeeper/tongo/tlb"
)

func testAccount(b byte) tongo.AccountID {
	var addr tongo.Bits256
	addr[0] = b
	return *tongo.NewAccountId(0, addr)
}

func testTip(n int) Tip {
	return Tip{
		Sender:     testAccount(2),
		Amount:     tlb.Grams(n),
		Visibility: VisibilityPublic,
		Memo:       "thanks",
		Timestamp:  time.Unix(int64(1700000000+n), 0),
	}
}

func TestNewTipJarValidation(t *testing.T) {
	owner := testAccount(1)

	longText := func(n int) string {
		buf := make([]byte, n)
		for i := range buf {
			buf[i] = 'x'
		}
		return string(buf)
	}

	if _, err := NewTipJar(owner, "coffee fund", "community", 0); err != ErrorInvalidGoal {
		t.Fatalf("expected ErrorInvalidGoal, got %v", err)
	}
	if _, err := NewTipJar(owner, longText(MaxDescriptionLen+1), "community", 1000); err != ErrorDescriptionTooLong {
		t.Fatalf("expected ErrorDescriptionTooLong, got %v", err)
	}
	if _, err := NewTipJar(owner, "coffee fund", longText(MaxCategoryLen+1), 1000); err != ErrorCategoryTooLong {
		t.Fatalf("expected ErrorCategoryTooLong, got %v", err)
	}

	jar, err := NewTipJar(owner, longText(MaxDescriptionLen), longText(MaxCategoryLen), 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !jar.IsActive {
		t.Fatalf("new jar must start active")
	}
	if jar.IsPrivate {
		t.Fatalf("new jar must start public")
	}
	if jar.TotalReceived != 0 || jar.TotalTipsCount != 0 || len(jar.TipsHistory) != 0 || jar.LastTipIndex != 0 {
		t.Fatalf("new jar must start with zeroed aggregates and empty history")
	}
	if jar.Owner != owner {
		t.Fatalf("owner mismatch")
	}
}

func TestRecordTipFillsThenOverwritesOldest(t *testing.T) {
	jar, err := NewTipJar(testAccount(1), "coffee fund", "community", 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const extra = 7
	for n := 1; n <= MaxHistoryLen+extra; n++ {
		jar.RecordTip(testTip(n))

		if n <= MaxHistoryLen && jar.LastTipIndex != 0 {
			t.Fatalf("cursor must stay put while the buffer is filling, moved at tip %v", n)
		}
	}

	if len(jar.TipsHistory) != MaxHistoryLen {
		t.Fatalf("expected %v entries, got %v", MaxHistoryLen, len(jar.TipsHistory))
	}

	// The oldest `extra` entries are overwritten in insertion order, so the
	// first slots now hold the newest tips.
	for i := 0; i < extra; i++ {
		got := jar.TipsHistory[i].Amount
		want := tlb.Grams(MaxHistoryLen + i + 1)
		if got != want {
			t.Fatalf("slot %v: expected amount %v, got %v", i, want, got)
		}
	}
	if jar.TipsHistory[extra].Amount != tlb.Grams(extra+1) {
		t.Fatalf("slot %v must still hold the surviving oldest tip", extra)
	}
	if jar.LastTipIndex != extra {
		t.Fatalf("expected cursor at %v, got %v", extra, jar.LastTipIndex)
	}
}

func TestHistoryPageIsTolerant(t *testing.T) {
	jar, _ := NewTipJar(testAccount(1), "coffee fund", "community", 1000)
	for n := 1; n <= 25; n++ {
		jar.RecordTip(testTip(n))
	}

	if got := jar.HistoryPage(0, 10); len(got) != 10 {
		t.Fatalf("page 0: expected 10 tips, got %v", len(got))
	}
	if got := jar.HistoryPage(2, 10); len(got) != 5 {
		t.Fatalf("page 2: expected the 5-tip tail, got %v", len(got))
	}
	if got := jar.HistoryPage(2, 10); got[0].Amount != 21 {
		t.Fatalf("page 2 must start at the 21st tip, got amount %v", got[0].Amount)
	}
	if got := jar.HistoryPage(5, 10); len(got) != 0 {
		t.Fatalf("out-of-range page must be empty, got %v tips", len(got))
	}
	if got := jar.HistoryPage(-1, 10); len(got) != 0 {
		t.Fatalf("negative page must be empty, got %v tips", len(got))
	}
	if got := jar.HistoryPage(0, 0); len(got) != 0 {
		t.Fatalf("zero page size must be empty, got %v tips", len(got))
	}
	// A huge page number must not overflow the start offset into a panic.
	if got := jar.HistoryPage(math.MaxInt/4, 8); len(got) != 0 {
		t.Fatalf("huge page must be empty, got %v tips", len(got))
	}
	if got := jar.HistoryPage(math.MaxInt, math.MaxInt); len(got) != 0 {
		t.Fatalf("huge page and size must be empty, got %v tips", len(got))
	}
}

func TestClearHistoryKeepsTotalCount(t *testing.T) {
	jar, _ := NewTipJar(testAccount(1), "coffee fund", "community", 1000)
	for n := 1; n <= MaxHistoryLen+3; n++ {
		jar.RecordTip(testTip(n))
		jar.TotalTipsCount++
	}

	jar.ClearHistory()

	if len(jar.TipsHistory) != 0 {
		t.Fatalf("history must be empty after clearing, got %v", len(jar.TipsHistory))
	}
	if jar.LastTipIndex != 0 {
		t.Fatalf("cursor must reset to 0, got %v", jar.LastTipIndex)
	}
	if jar.TotalTipsCount != MaxHistoryLen+3 {
		t.Fatalf("total count must survive clearing, got %v", jar.TotalTipsCount)
	}

	// The cleared buffer fills from scratch again.
	jar.RecordTip(testTip(1))
	if len(jar.TipsHistory) != 1 || jar.LastTipIndex != 0 {
		t.Fatalf("cleared buffer must fill like a fresh one")
	}
}

func TestJarAddressIsStablePerOwner(t *testing.T) {
	owner := testAccount(1)

	first := JarAddress(owner)
	second := JarAddress(owner)
	if first != second {
		t.Fatalf("jar address must be stable for one owner")
	}
	if first == owner {
		t.Fatalf("jar address must differ from the owner account")
	}
	if first == JarAddress(testAccount(2)) {
		t.Fatalf("different owners must get different jar addresses")
	}
	if first.Workchain != 0 {
		t.Fatalf("jar addresses live in the base workchain")
	}
}
