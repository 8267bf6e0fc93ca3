package emitter

// The values in this file are part of the WebAssembly binary format and
// must never be reordered or renumbered.

// Section is a module section id.
// https://webassembly.github.io/spec/core/binary/modules.html#sections
type Section byte

const (
	SectionCustom  Section = 0
	SectionType    Section = 1
	SectionImport  Section = 2
	SectionFunc    Section = 3
	SectionTable   Section = 4
	SectionMemory  Section = 5
	SectionGlobal  Section = 6
	SectionExport  Section = 7
	SectionStart   Section = 8
	SectionElement Section = 9
	SectionCode    Section = 10
	SectionData    Section = 11
)

// Valtype is a value type.
// https://webassembly.github.io/spec/core/binary/types.html
type Valtype byte

const (
	ValtypeI32 Valtype = 0x7f
	ValtypeF32 Valtype = 0x7d
)

// Blocktype is the type immediate of a block instruction.
// https://webassembly.github.io/spec/core/binary/types.html#binary-blocktype
type Blocktype byte

const (
	BlocktypeVoid Blocktype = 0x40
)

// Opcode is an instruction byte.
// https://webassembly.github.io/spec/core/binary/instructions.html
type Opcode byte

const (
	OpBlock        Opcode = 0x02
	OpLoop         Opcode = 0x03
	OpBr           Opcode = 0x0c
	OpBrIf         Opcode = 0x0d
	OpEnd          Opcode = 0x0b
	OpCall         Opcode = 0x10
	OpGetLocal     Opcode = 0x20
	OpSetLocal     Opcode = 0x21
	OpI32Store8    Opcode = 0x3a
	OpI32Const     Opcode = 0x41
	OpF32Const     Opcode = 0x43
	OpI32Eqz       Opcode = 0x45
	OpI32Eq        Opcode = 0x46
	OpF32Eq        Opcode = 0x5b
	OpF32Lt        Opcode = 0x5d
	OpF32Gt        Opcode = 0x5e
	OpI32And       Opcode = 0x71
	OpF32Add       Opcode = 0x92
	OpF32Sub       Opcode = 0x93
	OpF32Mul       Opcode = 0x94
	OpF32Div       Opcode = 0x95
	OpI32TruncF32S Opcode = 0xa8
)

// ExportType is an export descriptor kind.
// http://webassembly.github.io/spec/core/binary/modules.html#export-section
type ExportType byte

const (
	ExportFunc   ExportType = 0x00
	ExportTable  ExportType = 0x01
	ExportMem    ExportType = 0x02
	ExportGlobal ExportType = 0x03
)

// FunctionType marks the start of a function type.
// http://webassembly.github.io/spec/core/binary/types.html#function-types
const FunctionType byte = 0x60

// EmptyArray is a zero length vector.
const EmptyArray byte = 0x00

// https://webassembly.github.io/spec/core/binary/modules.html#binary-module
var (
	MagicModuleHeader = []byte{0x00, 0x61, 0x73, 0x6d}
	ModuleVersion     = []byte{0x01, 0x00, 0x00, 0x00}
)
