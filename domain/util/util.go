package util

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/tonkeeper/tongo/tlb"
)

func GramToTonString(gram tlb.Grams) string {
	return fmt.Sprintf("%v Ton", humanize.Commaf(float64(gram)/1000000000))
}

func GramString(gram tlb.Grams) string {
	return fmt.Sprintf("%v Gram", humanize.Comma(int64(gram)))
}
