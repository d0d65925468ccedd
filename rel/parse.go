package rel

import (
	"fmt"

	"github.com/spf13/cast"
	yaml "gopkg.in/yaml.v2"
)

// ParseRecord parses a record-literal string such as
//
//	{name: string, amount: int64}
//
// into a RecordType. The literal is a YAML flow mapping, which keeps the
// field order the caller wrote.
func ParseRecord(text string) (RecordType, error) {
	var pairs yaml.MapSlice
	if err := yaml.Unmarshal([]byte(text), &pairs); err != nil {
		return nil, fmt.Errorf("malformed record literal %q: %s", text, err)
	}

	record := make(RecordType, 0, len(pairs))
	seen := make(map[string]struct{}, len(pairs))
	for _, pair := range pairs {
		name := cast.ToString(pair.Key)
		if _, dup := seen[name]; dup {
			return nil, ErrDuplicateColumn.New(name)
		}
		seen[name] = struct{}{}

		typ, err := ParseElementType(cast.ToString(pair.Value))
		if err != nil {
			return nil, err
		}
		record = append(record, Field{Name: name, Type: typ})
	}
	return record, nil
}

// MustParseRecord is like ParseRecord but panics on malformed input. Intended
// for declarations and tests.
func MustParseRecord(text string) RecordType {
	record, err := ParseRecord(text)
	if err != nil {
		panic(err)
	}
	return record
}
