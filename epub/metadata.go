package epub

import (
	"slices"
	"strconv"
	"strings"
)

// titles returns the non-empty dc:title values. When any title carries an
// EPUB 3 display-seq refinement the list is ordered by it, titles without
// one keep their document order after the sequenced ones.
func (m *packageMetadata) titles() []string {
	type candidate struct {
		value string
		seq   int // 0 when absent
	}

	refines := make(map[string][]packageMeta)
	for _, meta := range m.Metas {
		if id, ok := strings.CutPrefix(strings.TrimSpace(meta.Refines), "#"); ok && id != "" {
			refines[id] = append(refines[id], meta)
		}
	}

	var (
		list      []candidate
		sequenced bool
	)
	for _, t := range m.Titles {
		v := strings.TrimSpace(t.Value)
		if v == "" {
			continue
		}
		c := candidate{value: v}
		if t.ID != "" {
			for _, meta := range refines[t.ID] {
				if meta.Property != "display-seq" {
					continue
				}
				if n, err := strconv.Atoi(strings.TrimSpace(meta.Value)); err == nil && n > 0 {
					c.seq, sequenced = n, true
					break
				}
			}
		}
		list = append(list, c)
	}

	if sequenced {
		slices.SortStableFunc(list, func(a, b candidate) int {
			switch {
			case a.seq == b.seq:
				return 0
			case a.seq == 0:
				return 1
			case b.seq == 0:
				return -1
			}
			return a.seq - b.seq
		})
	}

	out := make([]string, 0, len(list))
	for _, c := range list {
		out = append(out, c.value)
	}
	return out
}
