package domain

import (
	"bytes"
	"encoding/binary"
	"time"

	"github.com/tonkeeper/tongo"
	"github.com/tonkeeper/tongo/tlb"
)

// The jar record is persisted as a fixed-capacity account image:
// discriminator, static fields, capped strings, capped history vector.
// The encoded size never varies, so the storage provider can allocate the
// slot once at creation time.
const (
	imageDiscriminator = "tipjar\x01\x00"

	accountIdSize = 4 + 32 // workchain + address hash

	tipSize = accountIdSize + // sender
		8 + // amount
		1 + // visibility
		(4 + MaxMemoLen) + // memo length prefix + capped text
		8 // unix timestamp

	staticSize = 1 + // is_active
		1 + // is_private
		accountIdSize + // owner
		8 + // goal
		8 + // total_received
		2 + // last_tip_index
		4 // total_tips_count

	TipJarImageSize = len(imageDiscriminator) +
		staticSize +
		(4 + MaxDescriptionLen) +
		(4 + MaxCategoryLen) +
		(4 + MaxHistoryLen*tipSize)
)

type imageWriter struct {
	buf []byte
	pos int
}

func (w *imageWriter) bytes(p []byte) {
	copy(w.buf[w.pos:], p)
	w.pos += len(p)
}

func (w *imageWriter) byte(b byte) {
	w.buf[w.pos] = b
	w.pos++
}

func (w *imageWriter) bool(v bool) {
	if v {
		w.byte(1)
	} else {
		w.byte(0)
	}
}

func (w *imageWriter) uint16(v uint16) {
	binary.LittleEndian.PutUint16(w.buf[w.pos:], v)
	w.pos += 2
}

func (w *imageWriter) uint32(v uint32) {
	binary.LittleEndian.PutUint32(w.buf[w.pos:], v)
	w.pos += 4
}

func (w *imageWriter) uint64(v uint64) {
	binary.LittleEndian.PutUint64(w.buf[w.pos:], v)
	w.pos += 8
}

func (w *imageWriter) accountId(id tongo.AccountID) {
	w.uint32(uint32(id.Workchain))
	w.bytes(id.Address[:])
}

// cappedString writes the length prefix followed by the text, then skips
// over the unused remainder of the capped slot.
func (w *imageWriter) cappedString(s string, cap int) {
	w.uint32(uint32(len(s)))
	copy(w.buf[w.pos:], s)
	w.pos += cap
}

type imageReader struct {
	buf []byte
	pos int
	bad bool
}

func (r *imageReader) take(n int) []byte {
	if r.bad || r.pos+n > len(r.buf) {
		r.bad = true
		return make([]byte, n)
	}
	p := r.buf[r.pos : r.pos+n]
	r.pos += n
	return p
}

func (r *imageReader) byte() byte { return r.take(1)[0] }
func (r *imageReader) bool() bool { return r.byte() != 0 }
func (r *imageReader) uint16() uint16 { return binary.LittleEndian.Uint16(r.take(2)) }
func (r *imageReader) uint32() uint32 { return binary.LittleEndian.Uint32(r.take(4)) }
func (r *imageReader) uint64() uint64 { return binary.LittleEndian.Uint64(r.take(8)) }

func (r *imageReader) accountId() tongo.AccountID {
	wc := int32(r.uint32())
	var addr tongo.Bits256
	copy(addr[:], r.take(32))
	return *tongo.NewAccountId(wc, addr)
}

func (r *imageReader) cappedString(cap int) string {
	length := int(r.uint32())
	slot := r.take(cap)
	if length > cap {
		r.bad = true
		return ""
	}
	return string(slot[:length])
}

// EncodeTipJar serializes the record into its fixed-capacity account image.
// Over-cap text or history is rejected here as a last line; callers are
// expected to have validated the caps already.
func EncodeTipJar(jar *TipJar) ([]byte, error) {
	if len(jar.Description) > MaxDescriptionLen {
		return nil, ErrorDescriptionTooLong
	}
	if len(jar.Category) > MaxCategoryLen {
		return nil, ErrorCategoryTooLong
	}
	if len(jar.TipsHistory) > MaxHistoryLen {
		return nil, ErrorInvalidImage
	}

	w := &imageWriter{buf: make([]byte, TipJarImageSize)}
	w.bytes([]byte(imageDiscriminator))

	w.bool(jar.IsActive)
	w.bool(jar.IsPrivate)
	w.accountId(jar.Owner)
	w.uint64(uint64(jar.Goal))
	w.uint64(uint64(jar.TotalReceived))
	w.uint16(jar.LastTipIndex)
	w.uint32(jar.TotalTipsCount)

	w.cappedString(jar.Description, MaxDescriptionLen)
	w.cappedString(jar.Category, MaxCategoryLen)

	w.uint32(uint32(len(jar.TipsHistory)))
	for _, tip := range jar.TipsHistory {
		if len(tip.Memo) > MaxMemoLen {
			return nil, ErrorMemoTooLong
		}
		w.accountId(tip.Sender)
		w.uint64(uint64(tip.Amount))
		w.byte(byte(tip.Visibility))
		w.cappedString(tip.Memo, MaxMemoLen)
		w.uint64(uint64(tip.Timestamp.Unix()))
	}

	return w.buf, nil
}

// DecodeTipJar reconstructs a record from its account image.
func DecodeTipJar(image []byte) (*TipJar, error) {
	if len(image) != TipJarImageSize {
		return nil, ErrorInvalidImage
	}
	if !bytes.Equal(image[:len(imageDiscriminator)], []byte(imageDiscriminator)) {
		return nil, ErrorInvalidImage
	}

	r := &imageReader{buf: image, pos: len(imageDiscriminator)}

	jar := &TipJar{}
	jar.IsActive = r.bool()
	jar.IsPrivate = r.bool()
	jar.Owner = r.accountId()
	jar.Goal = tlb.Grams(r.uint64())
	jar.TotalReceived = tlb.Grams(r.uint64())
	jar.LastTipIndex = r.uint16()
	jar.TotalTipsCount = r.uint32()

	jar.Description = r.cappedString(MaxDescriptionLen)
	jar.Category = r.cappedString(MaxCategoryLen)

	count := int(r.uint32())
	if count > MaxHistoryLen || jar.LastTipIndex >= MaxHistoryLen {
		return nil, ErrorInvalidImage
	}

	jar.TipsHistory = make([]Tip, 0, MaxHistoryLen)
	for i := 0; i < count; i++ {
		tip := Tip{}
		tip.Sender = r.accountId()
		tip.Amount = tlb.Grams(r.uint64())
		tip.Visibility = Visibility(r.byte())
		tip.Memo = r.cappedString(MaxMemoLen)
		tip.Timestamp = time.Unix(int64(r.uint64()), 0)
		jar.TipsHistory = append(jar.TipsHistory, tip)
	}

	if r.bad {
		return nil, ErrorInvalidImage
	}
	return jar, nil
}
