//
// stats.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package trace

import (
	"fmt"
	"io"

	"github.com/markkurossi/tabulate"
)

// Stats counts the recorded trace steps per operation.
type Stats [numOps]int

// Count returns the total number of recorded steps.
func (s Stats) Count() int {
	var count int
	for _, c := range s {
		count += c
	}
	return count
}

func (s Stats) String() string {
	var result string
	for op := OpInput; op < numOps; op++ {
		if s[op] == 0 {
			continue
		}
		if len(result) > 0 {
			result += " "
		}
		result += fmt.Sprintf("%s=%d", op, s[op])
	}
	return result
}

// Print renders a per-operation step count report.
func (s Stats) Print(w io.Writer) {
	total := s.Count()
	if total == 0 {
		return
	}

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Op").SetAlign(tabulate.ML)
	tab.Header("Count").SetAlign(tabulate.MR)
	tab.Header("%").SetAlign(tabulate.MR)

	for op := OpInput; op < numOps; op++ {
		if s[op] == 0 {
			continue
		}
		row := tab.Row()
		row.Column(op.String())
		row.Column(fmt.Sprintf("%d", s[op]))
		row.Column(fmt.Sprintf("%.2f%%",
			float64(s[op])/float64(total)*100))
	}

	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(fmt.Sprintf("%d", total)).SetFormat(tabulate.FmtBold)
	row.Column("").SetFormat(tabulate.FmtBold)

	tab.Print(w)
}
