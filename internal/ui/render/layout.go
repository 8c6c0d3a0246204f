package render

// MinPanelWidth is the narrowest a panel gets when widths are requested.
const MinPanelWidth = 10

// PanelWidths lays out panels on total cells, one separator column between
// two panels. Requested widths (0 meaning no request) are honored when the
// other panels keep at least MinPanelWidth; the last panel without request
// takes what's left. Requests which don't fit are ignored.
func PanelWidths(total int, requested []int) []int {
	n := len(requested)
	if n == 0 {
		return nil
	}
	available := max(total-(n-1), 0)
	widths := make([]int, n)

	flexible := make([]bool, n)
	fixed, flexCount := 0, 0
	for i, w := range requested {
		if w > 0 && i < n-1 {
			widths[i] = w
			fixed += w
			continue
		}
		if w > 0 && flexCount > 0 {
			// the last panel only grows when no other panel can
			widths[i] = w
			fixed += w
			continue
		}
		flexible[i] = true
		flexCount++
	}
	if fixed+flexCount*MinPanelWidth > available {
		return evenWidths(available, n)
	}

	rest := available - fixed
	share := rest / flexCount
	last := -1
	for i := range widths {
		if flexible[i] {
			widths[i] = share
			last = i
		}
	}
	widths[last] += rest - share*flexCount
	return widths
}

func evenWidths(available, n int) []int {
	widths := make([]int, n)
	share := available / n
	for i := range widths {
		widths[i] = share
	}
	widths[n-1] += available - share*n
	return widths
}
