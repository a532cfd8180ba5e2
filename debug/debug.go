package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Read     bool
	Classify bool
	Coalesce bool
	Filter   bool
	Write    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Read = boolEnv("LEX_DEBUG_READ")
	d.Classify = boolEnv("LEX_DEBUG_CLASSIFY")
	d.Coalesce = boolEnv("LEX_DEBUG_COALESCE")
	d.Filter = boolEnv("LEX_DEBUG_FILTER")
	d.Write = boolEnv("LEX_DEBUG_WRITE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Read() bool {
	return d.Read
}
func Classify() bool {
	return d.Classify
}
func Coalesce() bool {
	return d.Coalesce
}
func Filter() bool {
	return d.Filter
}
func Write() bool {
	return d.Write
}
