package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse    bool
	Query    bool
	Classify bool
	Diff     bool
	Config   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("DELTAPAD_DEBUG_PARSE")
	d.Query = boolEnv("DELTAPAD_DEBUG_QUERY")
	d.Classify = boolEnv("DELTAPAD_DEBUG_CLASSIFY")
	d.Diff = boolEnv("DELTAPAD_DEBUG_DIFF")
	d.Config = boolEnv("DELTAPAD_DEBUG_CONFIG")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Query() bool {
	return d.Query
}
func Classify() bool {
	return d.Classify
}
func Diff() bool {
	return d.Diff
}
func Config() bool {
	return d.Config
}

// Logf writes a debug line to stderr.
func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "debug: "+format+"\n", args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(append(d, '\n'))
}
