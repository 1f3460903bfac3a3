package wasm

import "bytes"

// Binary format constants (WebAssembly core spec v1).
const (
	secType   = 1
	secFunc   = 3
	secExport = 7
	secCode   = 10

	funcTypeTag   = 0x60
	exportKindFun = 0x00

	opBlockEnd = 0x0B
	opReturn   = 0x0F
	opI32Const = 0x41
)

var (
	magic   = []byte{0x00, 0x61, 0x73, 0x6D} // "\0asm"
	version = []byte{0x01, 0x00, 0x00, 0x00}
)

// EncodeBinary serializes the module. Encoding is a pure function of the
// module's contents, so equal modules always produce identical bytes.
// Callers are expected to Validate first; EncodeBinary does not re-check.
func (m *Module) EncodeBinary() []byte {
	var out bytes.Buffer
	out.Write(magic)
	out.Write(version)

	if len(m.Funcs) > 0 {
		writeSection(&out, secType, m.encodeTypeSection())
		writeSection(&out, secFunc, m.encodeFuncSection())
	}
	if len(m.Exports) > 0 {
		writeSection(&out, secExport, m.encodeExportSection())
	}
	if len(m.Funcs) > 0 {
		writeSection(&out, secCode, m.encodeCodeSection())
	}
	return out.Bytes()
}

// One functype per function; function i uses type i.
func (m *Module) encodeTypeSection() []byte {
	var buf bytes.Buffer
	writeUleb(&buf, uint32(len(m.Funcs)))
	for _, fn := range m.Funcs {
		buf.WriteByte(funcTypeTag)
		writeUleb(&buf, 0) // no parameters
		writeUleb(&buf, uint32(len(fn.Results)))
		for _, r := range fn.Results {
			buf.WriteByte(byte(r))
		}
	}
	return buf.Bytes()
}

func (m *Module) encodeFuncSection() []byte {
	var buf bytes.Buffer
	writeUleb(&buf, uint32(len(m.Funcs)))
	for i := range m.Funcs {
		writeUleb(&buf, uint32(i))
	}
	return buf.Bytes()
}

func (m *Module) encodeExportSection() []byte {
	var buf bytes.Buffer
	writeUleb(&buf, uint32(len(m.Exports)))
	for _, exp := range m.Exports {
		writeUleb(&buf, uint32(len(exp.Name)))
		buf.WriteString(exp.Name)
		buf.WriteByte(exportKindFun)
		writeUleb(&buf, uint32(exp.FuncIndex))
	}
	return buf.Bytes()
}

func (m *Module) encodeCodeSection() []byte {
	var buf bytes.Buffer
	writeUleb(&buf, uint32(len(m.Funcs)))
	for _, fn := range m.Funcs {
		var body bytes.Buffer
		writeUleb(&body, 0) // no locals
		if fn.Body != nil {
			encodeInstr(&body, fn.Body)
		}
		body.WriteByte(opBlockEnd)

		writeUleb(&buf, uint32(body.Len()))
		buf.Write(body.Bytes())
	}
	return buf.Bytes()
}

func encodeInstr(buf *bytes.Buffer, in Instruction) {
	switch in := in.(type) {
	case *I32Const:
		buf.WriteByte(opI32Const)
		writeSleb(buf, in.Value)
	case *Return:
		if in.Value != nil {
			encodeInstr(buf, in.Value)
		}
		buf.WriteByte(opReturn)
	case *Block:
		for _, child := range in.Body {
			encodeInstr(buf, child)
		}
	}
}

func writeSection(out *bytes.Buffer, id byte, contents []byte) {
	out.WriteByte(id)
	writeUleb(out, uint32(len(contents)))
	out.Write(contents)
}

// writeUleb writes v in unsigned LEB128.
func writeUleb(buf *bytes.Buffer, v uint32) {
	for {
		b := byte(v & 0x7F)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		buf.WriteByte(b)
		if v == 0 {
			return
		}
	}
}

// writeSleb writes v in signed LEB128.
func writeSleb(buf *bytes.Buffer, v int32) {
	for {
		b := byte(v & 0x7F)
		v >>= 7
		if (v == 0 && b&0x40 == 0) || (v == -1 && b&0x40 != 0) {
			buf.WriteByte(b)
			return
		}
		buf.WriteByte(b | 0x80)
	}
}
