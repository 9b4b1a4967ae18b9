package pkgconfig

import (
	"bufio"
	"io"
)

// readLogicalLine reads one logical line from r, handling comment and
// continuation escapes the way pkg-config's descriptor grammar does:
//
//   - line terminators \n, \r, \r\n, and \n\r are each consumed atomically;
//   - an unescaped '#' starts a comment that runs to the terminator, which
//     is still consumed;
//   - '\' escapes the next byte: before '#' it emits a literal '#' without
//     starting a comment; before a terminator it splices the next physical
//     line onto this one; before anything else it passes both bytes through
//     unchanged.
//
// It reports ok=false only when called at end of stream with nothing read.
func readLogicalLine(r *bufio.Reader) (line string, ok bool, err error) {
	var buf []byte
	readAny := false

	for {
		b, rerr := r.ReadByte()
		if rerr != nil {
			if rerr == io.EOF {
				break
			}
			return "", false, rerr
		}
		readAny = true

		switch b {
		case '\\':
			nb, nerr := r.ReadByte()
			if nerr != nil {
				if nerr == io.EOF {
					buf = append(buf, '\\')
					goto done
				}
				return "", false, nerr
			}
			switch nb {
			case '#':
				buf = append(buf, '#')
			case '\n':
				consumePair(r, '\r')
			case '\r':
				consumePair(r, '\n')
			default:
				buf = append(buf, '\\', nb)
			}

		case '#':
			discardToTerminator(r)
			goto done

		case '\n':
			consumePair(r, '\r')
			goto done

		case '\r':
			consumePair(r, '\n')
			goto done

		default:
			buf = append(buf, b)
		}
	}

done:
	if !readAny {
		return "", false, nil
	}
	return string(buf), true, nil
}

// consumePair eats a single trailing byte equal to other, if present,
// completing a two-byte line terminator such as "\r\n" or "\n\r".
func consumePair(r *bufio.Reader, other byte) {
	b, err := r.ReadByte()
	if err != nil {
		return
	}
	if b != other {
		r.UnreadByte()
	}
}

func discardToTerminator(r *bufio.Reader) {
	for {
		b, err := r.ReadByte()
		if err != nil {
			return
		}
		switch b {
		case '\n':
			consumePair(r, '\r')
			return
		case '\r':
			consumePair(r, '\n')
			return
		}
	}
}
