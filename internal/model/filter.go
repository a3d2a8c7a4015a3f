package model

// Filter selects items by category. The zero value matches everything.
type Filter struct {
	Category Category
}

// All matches every item.
var All = Filter{}

func (f Filter) Match(it Item) bool {
	return f.Category == "" || it.Category == f.Category
}

// Label names the filter the way the category picker shows it.
func (f Filter) Label() string {
	if f.Category == "" {
		return "Todos"
	}
	return f.Category.Label()
}

// Next cycles Todos -> each category -> Todos.
func (f Filter) Next() Filter {
	if f.Category == "" {
		return Filter{Category: Categories[0]}
	}
	for i, c := range Categories {
		if c == f.Category && i+1 < len(Categories) {
			return Filter{Category: Categories[i+1]}
		}
	}
	return All
}

// Apply returns the matching items in their original order.
func (f Filter) Apply(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if f.Match(it) {
			out = append(out, it)
		}
	}
	return out
}

// Partition splits items into active and completed, order preserved.
func Partition(items []Item) (active, completed []Item) {
	for _, it := range items {
		if it.Completed {
			completed = append(completed, it)
		} else {
			active = append(active, it)
		}
	}
	return
}

// Stats counts completed and pending items.
func Stats(items []Item) (done, pending int) {
	for _, it := range items {
		if it.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}
