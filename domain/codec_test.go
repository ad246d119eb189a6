package domain

import (
	"testing"
	"time"

	"github.com/tonkeeper/tongo/tlb"
)

func wrappedTestJar() *TipJar {
	jar, _ := NewTipJar(testAccount(1), "coffee fund", "community", 5_000_000_000)
	jar.IsPrivate = true

	for n := 1; n <= MaxHistoryLen+13; n++ {
		tip := testTip(n)
		if n%3 == 0 {
			tip.Visibility = VisibilityAnonymous
			tip.Memo = ""
		}
		jar.RecordTip(tip)
		jar.TotalTipsCount++
		jar.TotalReceived += tip.Amount
	}
	return jar
}

func TestImageRoundTrip(t *testing.T) {
	jar := wrappedTestJar()

	image, err := EncodeTipJar(jar)
	if err != nil {
		t.Fatalf("unexpected encoding error: %v", err)
	}
	if len(image) != TipJarImageSize {
		t.Fatalf("expected a %v-byte image, got %v", TipJarImageSize, len(image))
	}

	decoded, err := DecodeTipJar(image)
	if err != nil {
		t.Fatalf("unexpected decoding error: %v", err)
	}

	if decoded.Owner != jar.Owner ||
		decoded.IsActive != jar.IsActive ||
		decoded.IsPrivate != jar.IsPrivate ||
		decoded.Description != jar.Description ||
		decoded.Category != jar.Category ||
		decoded.Goal != jar.Goal ||
		decoded.TotalReceived != jar.TotalReceived ||
		decoded.TotalTipsCount != jar.TotalTipsCount ||
		decoded.LastTipIndex != jar.LastTipIndex {
		t.Fatalf("static fields did not survive the round trip:\n got %+v\nwant %+v", decoded, jar)
	}

	if len(decoded.TipsHistory) != len(jar.TipsHistory) {
		t.Fatalf("expected %v history entries, got %v", len(jar.TipsHistory), len(decoded.TipsHistory))
	}
	for i, want := range jar.TipsHistory {
		got := decoded.TipsHistory[i]
		if got.Sender != want.Sender ||
			got.Amount != want.Amount ||
			got.Visibility != want.Visibility ||
			got.Memo != want.Memo ||
			!got.Timestamp.Equal(want.Timestamp) {
			t.Fatalf("history entry %v did not survive the round trip:\n got %+v\nwant %+v", i, got, want)
		}
	}
}

func TestImageSizeIsFixed(t *testing.T) {
	empty, _ := NewTipJar(testAccount(1), "", "", 1)
	full := wrappedTestJar()

	emptyImage, err := EncodeTipJar(empty)
	if err != nil {
		t.Fatalf("unexpected encoding error: %v", err)
	}
	fullImage, err := EncodeTipJar(full)
	if err != nil {
		t.Fatalf("unexpected encoding error: %v", err)
	}
	if len(emptyImage) != len(fullImage) {
		t.Fatalf("image size must not depend on the content: %v vs %v", len(emptyImage), len(fullImage))
	}
}

func TestDecodeRejectsBadImages(t *testing.T) {
	jar := wrappedTestJar()
	image, err := EncodeTipJar(jar)
	if err != nil {
		t.Fatalf("unexpected encoding error: %v", err)
	}

	if _, err := DecodeTipJar(image[:len(image)-1]); err != ErrorInvalidImage {
		t.Fatalf("truncated image: expected ErrorInvalidImage, got %v", err)
	}
	if _, err := DecodeTipJar(append(image, 0)); err != ErrorInvalidImage {
		t.Fatalf("oversized image: expected ErrorInvalidImage, got %v", err)
	}

	corrupted := make([]byte, len(image))
	copy(corrupted, image)
	corrupted[0] ^= 0xff
	if _, err := DecodeTipJar(corrupted); err != ErrorInvalidImage {
		t.Fatalf("bad discriminator: expected ErrorInvalidImage, got %v", err)
	}

	// An over-cap description length prefix must not be trusted.
	copy(corrupted, image)
	corrupted[len(imageDiscriminator)+staticSize] = 0xff
	corrupted[len(imageDiscriminator)+staticSize+1] = 0xff
	if _, err := DecodeTipJar(corrupted); err != ErrorInvalidImage {
		t.Fatalf("over-cap description length: expected ErrorInvalidImage, got %v", err)
	}
}

func TestEncodeRejectsOverCapRecords(t *testing.T) {
	longText := func(n int) string {
		buf := make([]byte, n)
		for i := range buf {
			buf[i] = 'x'
		}
		return string(buf)
	}

	jar, _ := NewTipJar(testAccount(1), "coffee fund", "community", 1000)

	jar.Description = longText(MaxDescriptionLen + 1)
	if _, err := EncodeTipJar(jar); err != ErrorDescriptionTooLong {
		t.Fatalf("expected ErrorDescriptionTooLong, got %v", err)
	}
	jar.Description = "coffee fund"

	jar.Category = longText(MaxCategoryLen + 1)
	if _, err := EncodeTipJar(jar); err != ErrorCategoryTooLong {
		t.Fatalf("expected ErrorCategoryTooLong, got %v", err)
	}
	jar.Category = "community"

	tip := testTip(1)
	tip.Amount = tlb.Grams(1)
	tip.Memo = longText(MaxMemoLen + 1)
	jar.TipsHistory = append(jar.TipsHistory, tip)
	if _, err := EncodeTipJar(jar); err != ErrorMemoTooLong {
		t.Fatalf("expected ErrorMemoTooLong, got %v", err)
	}
}

func TestDecodePreservesTimestamps(t *testing.T) {
	jar, _ := NewTipJar(testAccount(1), "coffee fund", "community", 1000)
	tip := testTip(1)
	tip.Timestamp = time.Unix(1756166400, 0)
	jar.RecordTip(tip)

	image, err := EncodeTipJar(jar)
	if err != nil {
		t.Fatalf("unexpected encoding error: %v", err)
	}
	decoded, err := DecodeTipJar(image)
	if err != nil {
		t.Fatalf("unexpected decoding error: %v", err)
	}
	if decoded.TipsHistory[0].Timestamp.Unix() != 1756166400 {
		t.Fatalf("expected unix 1756166400, got %v", decoded.TipsHistory[0].Timestamp.Unix())
	}
}
