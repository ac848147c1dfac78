// internal/model/string_list.go
package model

import (
    "database/sql/driver"
    "encoding/json"
    "fmt"
)

// StringList maps a jsonb column holding an ordered list of strings.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
    if l == nil {
        return nil, nil
    }
    return json.Marshal(l)
}

func (l *StringList) Scan(src interface{}) error {
    if src == nil {
        *l = nil
        return nil
    }
    var b []byte
    switch v := src.(type) {
    case []byte:
        b = v
    case string:
        b = []byte(v)
    default:
        return fmt.Errorf("cannot scan %T into StringList", src)
    }
    return json.Unmarshal(b, l)
}
