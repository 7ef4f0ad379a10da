/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package fields

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/UnifyEM/netid/common/interfaces"
)

// Ensure Fields implements interfaces.Fields
var _ interfaces.Fields = (*Fields)(nil)

type Fields struct {
	Fields []Field
}

type Field struct {
	K string
	V any
}

// Name returns the key of the field to implement the NVPair interface
func (f Field) Name() string {
	return f.K
}

// Value returns the value of the field to implement the NVPair interface
func (f Field) Value() any {
	return f.V
}

func NewFields(fields ...Field) *Fields {
	return &Fields{Fields: fields}
}

func NewField(key string, value any) Field {
	return Field{K: key, V: value}
}

func (f *Fields) Append(fields ...Field) {
	f.Fields = append(f.Fields, fields...)
}

func (f *Fields) AppendKV(key string, value any) {
	f.Fields = append(f.Fields, Field{K: key, V: value})
}

// AppendMapString appends the map in key order so log lines are stable
func (f *Fields) AppendMapString(m map[string]string) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		f.Fields = append(f.Fields, Field{K: k, V: m[k]})
	}
}

// ToText converts the Fields to key=value text. Values that are empty or
// contain whitespace are quoted.
func (f *Fields) ToText() string {
	if f == nil || len(f.Fields) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, field := range f.Fields {
		if i > 0 {
			sb.WriteByte(' ')
		}
		v := fmt.Sprintf("%v", field.V)
		if v == "" || strings.ContainsAny(v, " \t\r\n\"") {
			v = strconv.Quote(v)
		}
		sb.WriteString(field.K)
		sb.WriteByte('=')
		sb.WriteString(v)
	}
	return sb.String()
}

// ToPairs implements the ToPairs method
func (f *Fields) ToPairs() []interfaces.NVPair {
	if f == nil {
		return nil
	}
	pairs := make([]interfaces.NVPair, len(f.Fields))
	for i, field := range f.Fields {
		pairs[i] = field
	}
	return pairs
}
