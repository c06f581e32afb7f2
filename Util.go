package gobitflyer

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

func ToInt(v interface{}) int {
	if v == nil {
		return 0
	}

	switch v.(type) {
	case string:
		vStr := v.(string)
		vInt, _ := strconv.Atoi(vStr)
		return vInt
	case int:
		return v.(int)
	case float64:
		vF := v.(float64)
		return int(vF)
	case json.Number:
		vN := v.(json.Number)
		if vInt, err := vN.Int64(); err == nil {
			return int(vInt)
		}
		vF, _ := vN.Float64()
		return int(vF)
	default:
		return 0
	}
}

// ToString renders a param value the way it goes on the wire in a query string.
func ToString(v interface{}) string {
	switch v.(type) {
	case nil:
		return ""
	case string:
		return v.(string)
	case float64:
		return strconv.FormatFloat(v.(float64), 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v.(float32)), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(v.(bool))
	case fmt.Stringer:
		return v.(fmt.Stringer).String()
	default:
		return fmt.Sprint(v)
	}
}

func UUID() string {
	return strings.Replace(uuid.New().String(), "-", "", 32)
}
