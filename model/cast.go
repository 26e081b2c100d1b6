package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/minivan/infer"
)

// PartitionValue returns the canonical string of a partition value.
//
//	"fruit" -> "fruit"   14 -> "14"   0.5 -> "0.5"   true -> "true"
//	[]interface{}{1, "a"} -> `[1,"a"]`
func PartitionValue(v interface{}) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case json.Number:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(x)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}

	return string(b)
}

// RankingValue converts v to a number, truncating toward zero when integer
// is set. ok is false for non-numeric values.
func RankingValue(v interface{}, integer bool) (float64, bool) {
	f, ok := infer.Number(v)
	if !ok {
		return 0, false
	}
	if integer {
		f = math.Trunc(f)
	}

	return f, true
}
