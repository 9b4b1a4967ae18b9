package pkgconfig

import "github.com/etnz/pkgconf/version"

// moduleState names the six states of the module-list tokenizer's machine:
//
//	OUTSIDE -> IN_NAME -> BEFORE_OP -> IN_OP -> AFTER_OP -> IN_VERSION -> OUTSIDE
type moduleState int

const (
	msOutside moduleState = iota
	msInName
	msBeforeOp
	msInOp
	msAfterOp
	msInVersion
)

// ParseModuleList is the exported entry point to the module-list tokenizer,
// for callers (such as a CLI's --exists constraint list) that need to split
// a "name [op version] …" string without going through a full descriptor
// parse.
func ParseModuleList(s string, lax bool) ([]RequiredVersion, error) {
	return parseModuleList("", s, lax)
}

func isListSeparator(b byte) bool {
	return b == ',' || b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f' || b == '\v'
}

func isOperatorByte(b byte) bool {
	return b == '<' || b == '>' || b == '!' || b == '='
}

// parseModuleList splits s, a string of the form
// "name [op version] (, | whitespace)+ name [op version] …", into
// RequiredVersion triples. Owner is left empty; callers fill it in.
//
// An operator may be separated from its name by whitespace (the scanner's
// BEFORE_OP state crosses it looking for an operator byte), but a comma
// always commits the current name with AlwaysMatch — a comma can never be
// mistaken for leading whitespace before an operator.
func parseModuleList(path, s string, lax bool) ([]RequiredVersion, error) {
	var out []RequiredVersion

	state := msOutside
	var name, op, ver string
	i := 0
	n := len(s)

	flush := func(name, op, ver string) error {
		if name == "" {
			return nil
		}
		if op == "" {
			out = append(out, RequiredVersion{Name: name, Comparison: version.AlwaysMatch})
			return nil
		}
		comparison, ok := version.ParseOperator(op)
		if !ok {
			if lax {
				return nil
			}
			return newParseError(path, "unrecognized comparison operator %q after %q", op, name)
		}
		if ver == "" {
			if lax {
				ver = "0"
			} else {
				return newParseError(path, "operator %q for %q with no version", op, name)
			}
		}
		out = append(out, RequiredVersion{Name: name, Comparison: comparison, Version: ver})
		return nil
	}

	for i < n {
		c := s[i]
		switch state {
		case msOutside:
			if isListSeparator(c) {
				i++
				continue
			}
			name, op, ver = "", "", ""
			state = msInName

		case msInName:
			if c == ',' {
				if err := flush(name, "", ""); err != nil {
					return nil, err
				}
				name, op, ver = "", "", ""
				state = msOutside
				i++
				continue
			}
			if isListSeparator(c) {
				state = msBeforeOp
				i++
				continue
			}
			name += string(c)
			i++

		case msBeforeOp:
			if isListSeparator(c) {
				if c == ',' {
					if err := flush(name, "", ""); err != nil {
						return nil, err
					}
					name, op, ver = "", "", ""
					state = msOutside
				}
				i++
				continue
			}
			if isOperatorByte(c) {
				state = msInOp
				continue
			}
			// Next module's name starts here; commit the current one.
			if err := flush(name, "", ""); err != nil {
				return nil, err
			}
			name, op, ver = "", "", ""
			state = msInName
			continue

		case msInOp:
			if isOperatorByte(c) {
				op += string(c)
				i++
				continue
			}
			state = msAfterOp

		case msAfterOp:
			if isListSeparator(c) {
				if c == ',' {
					if err := flush(name, op, ""); err != nil {
						return nil, err
					}
					name, op, ver = "", "", ""
					state = msOutside
				}
				i++
				continue
			}
			state = msInVersion

		case msInVersion:
			if isListSeparator(c) {
				if err := flush(name, op, ver); err != nil {
					return nil, err
				}
				name, op, ver = "", "", ""
				state = msOutside
				i++
				continue
			}
			ver += string(c)
			i++
		}
	}

	// End of input: commit whatever triple is pending.
	switch state {
	case msInName, msBeforeOp:
		if err := flush(name, "", ""); err != nil {
			return nil, err
		}
	case msInOp, msAfterOp:
		if err := flush(name, op, ""); err != nil {
			return nil, err
		}
	case msInVersion:
		if err := flush(name, op, ver); err != nil {
			return nil, err
		}
	}

	return out, nil
}
