package x64dec

// Legacy prefix bytes
const (
	prefixOpSize   = 0x66
	prefixAddrSize = 0x67
	prefixLock     = 0xf0
	prefixRepnz    = 0xf2
	prefixRep      = 0xf3
)

// REX bits
const (
	rexW = 0x08
	rexR = 0x04
	rexX = 0x02
	rexB = 0x01
)

// Mandatory-prefix table columns
const (
	colNone = iota
	col66
	colF3
	colF2
	numCols
)

// scanPrefixes consumes legacy prefixes and REX, leaving the reader at the opcode.
//
// A later prefix of a class replaces an earlier one. A legacy prefix following REX voids it.
// The mandatory-prefix column is selected by the last of 66, F2, or F3.
func (d *decoder) scanPrefixes() error {
	for {
		b, err := d.r.Peek()
		if err != nil {
			return err
		}
		switch b {
		case prefixOpSize:
			d.pfx.OpSize = true
			d.col = col66
		case prefixAddrSize:
			d.pfx.AddrSize = true
		case prefixLock:
			d.pfx.Lock = true
		case prefixRepnz:
			d.pfx.Rep = Repnz
			d.col = colF2
		case prefixRep:
			d.pfx.Rep = Rep
			d.col = colF3
		case 0x26:
			d.pfx.Seg = ES
		case 0x2e:
			d.pfx.Seg = CS
		case 0x36:
			d.pfx.Seg = SS
		case 0x3e:
			d.pfx.Seg = DS
		case 0x64:
			d.pfx.Seg = FS
		case 0x65:
			d.pfx.Seg = GS
		default:
			if b&0xf0 != 0x40 {
				return nil
			}
			d.rex = b
			d.r.i++
			continue
		}
		d.rex = 0
		d.r.i++
	}
}

// consumeMandatory removes the prefix which selected the instruction's table column, so it
// neither sizes operands nor renders as a repeat.
func (d *decoder) consumeMandatory() {
	switch d.col {
	case col66:
		d.pfx.OpSize = false
	case colF2, colF3:
		d.pfx.Rep = RepNone
	}
}
