package fsutils

import "strconv"

var sizeUnits = []string{"KB", "MB", "GB", "TB"}

// GetSizeShortText returns a human readable size string, rounded to the
// nearest whole unit. TB is the last unit.
func GetSizeShortText(size int64) string {
	const unit = 1024
	if size < unit {
		return strconv.FormatInt(size, 10) + "B"
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit && exp < len(sizeUnits)-1; n /= unit {
		div *= unit
		exp++
	}
	val := (size + div/2) / div
	// Rounding up can push the value into the next unit.
	if val >= unit && exp < len(sizeUnits)-1 {
		val /= unit
		exp++
	}
	return strconv.FormatInt(val, 10) + sizeUnits[exp]
}
