// Package moonnames maps calendar months to the traditional North
// American full moon names, with a short description and the folklore
// behind each name.
package moonnames

import "fmt"

// MoonName describes the traditional full moon of one month.
type MoonName struct {
	Month       int    `json:"month"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Folklore    string `json:"folklore"`
}

var names = [12]MoonName{
	{1, "Wolf Moon",
		"The first full moon of the year, rising over the deep cold of midwinter.",
		"Named for the wolves heard howling outside villages in the hungry depths of January."},
	{2, "Snow Moon",
		"The full moon of the snowiest month in the northern latitudes.",
		"February's heavy snows made hunting hard; some tribes called it the Hunger Moon."},
	{3, "Worm Moon",
		"The last full moon of winter, as the ground begins to thaw.",
		"Earthworm casts reappear in the softening soil, calling the robins back north."},
	{4, "Pink Moon",
		"The first full moon of spring.",
		"Named for wild ground phlox, one of the earliest widespread flowers of spring."},
	{5, "Flower Moon",
		"The full moon of late spring abundance.",
		"May's fields come into full bloom; also called the Corn Planting Moon."},
	{6, "Strawberry Moon",
		"The full moon nearest the June solstice.",
		"Marked the short season for gathering ripe wild strawberries."},
	{7, "Buck Moon",
		"The full moon of high summer.",
		"July is when a buck's new antlers push out in full velvet growth."},
	{8, "Sturgeon Moon",
		"The full moon of late summer.",
		"The giant sturgeon of the Great Lakes were most readily caught in August."},
	{9, "Corn Moon",
		"The full moon as the harvest begins.",
		"Marks the time to gather corn; when it falls nearest the equinox it is the Harvest Moon."},
	{10, "Hunter's Moon",
		"The first full moon after the Harvest Moon.",
		"With fields cleared, hunters could spot game fattened for winter by bright moonlight."},
	{11, "Beaver Moon",
		"The full moon before the winter freeze.",
		"The time to set beaver traps before the swamps froze, ensuring warm furs for winter."},
	{12, "Cold Moon",
		"The full moon of the longest nights.",
		"December's moon rides highest and longest opposite a low winter sun."},
}

// ForMonth returns the traditional moon name for a month in [1, 12].
func ForMonth(month int) (MoonName, error) {
	if month < 1 || month > 12 {
		return MoonName{}, fmt.Errorf("month %d out of range", month)
	}
	return names[month-1], nil
}

// All returns the full 12-entry table in month order.
func All() []MoonName {
	out := make([]MoonName, len(names))
	copy(out, names[:])
	return out
}
