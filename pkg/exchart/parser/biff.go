package parser

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"unicode/utf16"

	"github.com/shakinm/xlsReader/cfb"
)

// BIFF record identifiers read straight from the workbook stream.
const (
	recFormula    = 0x0006
	recEOF        = 0x000A
	recDateMode   = 0x0022
	recBoundSheet = 0x0085
	recString     = 0x0207
	recBOF        = 0x0809
)

// biffVersion8 is the BOF version of Excel 97 and later files.
const biffVersion8 = 0x0600

// biffGlobals holds what the globals substream says about the whole workbook.
type biffGlobals struct {
	biff8    bool
	date1904 bool
	// sheets are the substream offsets in BOUNDSHEET order.
	sheets []uint32
}

// formulaKind is the type of a cached formula result.
type formulaKind int

const (
	formulaNumber formulaKind = iota
	formulaText
	formulaBool
	formulaError
	formulaEmpty
)

// formulaCell is the cached result of one FORMULA record.
type formulaCell struct {
	kind formulaKind
	xf   int
	num  float64
	text string
}

type cellPos struct {
	row, col int
}

// workbookStream extracts the BIFF stream from a compound document.
func workbookStream(data []byte) ([]byte, error) {
	doc, err := cfb.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}

	var book, root *cfb.Directory
	for _, dir := range doc.GetDirs() {
		switch dir.Name() {
		case "Workbook":
			if book == nil {
				book = dir
			}
		case "Book":
			book = dir
		case "Root Entry":
			root = dir
		}
	}
	if book == nil || root == nil {
		return nil, fmt.Errorf("%w: no workbook stream", ErrInvalidWorkbook)
	}

	r, err := doc.OpenObject(book, root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}
	stream, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}
	if size := int(book.GetStreamSize()); size < len(stream) {
		stream = stream[:size]
	}
	return stream, nil
}

// walkRecords calls fn for every record of the substream starting at offset,
// up to its matching EOF. Records of embedded substreams (charts) are passed
// through as well.
func walkRecords(stream []byte, offset uint32, fn func(id uint16, body []byte)) error {
	pos := int(offset)
	depth := 0
	for pos+4 <= len(stream) {
		id := binary.LittleEndian.Uint16(stream[pos:])
		n := int(binary.LittleEndian.Uint16(stream[pos+2:]))
		start := pos + 4
		if start+n > len(stream) {
			return fmt.Errorf("%w: record %#04x at offset %d overruns the stream", ErrInvalidWorkbook, id, pos)
		}

		switch id {
		case recBOF:
			depth++
		case recEOF:
			depth--
			if depth <= 0 {
				return nil
			}
		}
		fn(id, stream[start:start+n])
		pos = start + n
	}
	return fmt.Errorf("%w: substream at offset %d has no EOF record", ErrInvalidWorkbook, offset)
}

// readGlobals reads the BIFF version, the date system and the sheet offsets.
func readGlobals(stream []byte) (biffGlobals, error) {
	var g biffGlobals
	seenBOF := false
	err := walkRecords(stream, 0, func(id uint16, body []byte) {
		switch id {
		case recBOF:
			if !seenBOF && len(body) >= 2 {
				g.biff8 = binary.LittleEndian.Uint16(body) == biffVersion8
				seenBOF = true
			}
		case recDateMode:
			if len(body) >= 2 {
				g.date1904 = binary.LittleEndian.Uint16(body) == 1
			}
		case recBoundSheet:
			if len(body) >= 4 {
				g.sheets = append(g.sheets, binary.LittleEndian.Uint32(body))
			}
		}
	})
	return g, err
}

// readFormulas collects the cached results of the FORMULA records of the
// sheet substream at offset. A string result lives in the STRING record that
// follows its FORMULA record.
func readFormulas(stream []byte, offset uint32, biff8 bool) (map[cellPos]formulaCell, error) {
	results := make(map[cellPos]formulaCell)
	var pending *cellPos

	err := walkRecords(stream, offset, func(id uint16, body []byte) {
		switch id {
		case recFormula:
			pending = nil
			if len(body) < 14 {
				return
			}
			pos := cellPos{
				row: int(binary.LittleEndian.Uint16(body[0:])),
				col: int(binary.LittleEndian.Uint16(body[2:])),
			}
			fc := formulaCell{xf: int(binary.LittleEndian.Uint16(body[4:]))}
			num := body[6:14]
			if num[6] != 0xFF || num[7] != 0xFF {
				fc.kind = formulaNumber
				fc.num = math.Float64frombits(binary.LittleEndian.Uint64(num))
			} else {
				switch num[0] {
				case 0:
					fc.kind = formulaText
					pending = &pos
				case 1:
					fc.kind = formulaBool
					fc.num = float64(num[2])
				case 2:
					fc.kind = formulaError
				default:
					fc.kind = formulaEmpty
				}
			}
			results[pos] = fc
		case recString:
			if pending == nil {
				return
			}
			fc := results[*pending]
			fc.text = decodeString(body, biff8)
			results[*pending] = fc
			pending = nil
		}
	})
	return results, err
}

// decodeString decodes the string of a STRING record. Characters continued
// in a CONTINUE record are not read.
func decodeString(body []byte, biff8 bool) string {
	if len(body) < 2 {
		return ""
	}
	cch := int(binary.LittleEndian.Uint16(body))
	if !biff8 {
		raw := body[2:]
		if cch < len(raw) {
			raw = raw[:cch]
		}
		return string(raw)
	}

	if len(body) < 3 {
		return ""
	}
	flags := body[2]
	raw := body[3:]
	if flags&0x08 != 0 && len(raw) >= 2 {
		raw = raw[2:]
	}
	if flags&0x04 != 0 && len(raw) >= 4 {
		raw = raw[4:]
	}

	if flags&0x01 == 0 {
		if cch < len(raw) {
			raw = raw[:cch]
		}
		runes := make([]rune, len(raw))
		for i, b := range raw {
			runes[i] = rune(b)
		}
		return string(runes)
	}

	units := make([]uint16, 0, cch)
	for i := 0; i+1 < len(raw) && len(units) < cch; i += 2 {
		units = append(units, binary.LittleEndian.Uint16(raw[i:]))
	}
	return string(utf16.Decode(units))
}
