package isa

// ordinaryOpcodes is the one-byte opcode table, spec.md §4.8 / §4.9,
// keyed by the raw opcode byte 0x00-0xDB, plus the prefix bytes
// 0xFB/0xFD/0xFE, which decode as two-byte instructions whenever their
// secondary byte has no prefixOpcodes entry.
var ordinaryOpcodes = map[uint8]Entry{
	0x00: {Mnemonic: "ldundefined", Units: []FormatUnit{UOpcode}},
	0x01: {Mnemonic: "ldnull", Units: []FormatUnit{UOpcode}},
	0x02: {Mnemonic: "ldtrue", Units: []FormatUnit{UOpcode}},
	0x03: {Mnemonic: "ldfalse", Units: []FormatUnit{UOpcode}},
	0x04: {Mnemonic: "createemptyobject", Units: []FormatUnit{UOpcode}},
	0x05: {Mnemonic: "createemptyarray", Units: []FormatUnit{UOpcode, URR}},
	0x06: {Mnemonic: "createarraywithbuffer", Units: []FormatUnit{UOpcode, URR, ULiteralID}},
	0x07: {Mnemonic: "createobjectwithbuffer", Units: []FormatUnit{UOpcode, URR, ULiteralID}},
	0x08: {Mnemonic: "newobjrange", Units: []FormatUnit{UOpcode, URR, UImm8, UV8}},
	0x09: {Mnemonic: "newlexenv", Units: []FormatUnit{UOpcode, UImm8}},
	0x0a: {Mnemonic: "add2", Units: []FormatUnit{UOpcode, URR, UV8}},
	0x0b: {Mnemonic: "sub2", Units: []FormatUnit{UOpcode, URR, UV8}},
	0x0c: {Mnemonic: "mul2", Units: []FormatUnit{UOpcode, URR, UV8}},
	0x0d: {Mnemonic: "div2", Units: []FormatUnit{UOpcode, URR, UV8}},
	0x0e: {Mnemonic: "mod2", Units: []FormatUnit{UOpcode, URR, UV8}},
	0x0f: {Mnemonic: "eq", Units: []FormatUnit{UOpcode, URR, UV8}},
	0x10: {Mnemonic: "noteq", Units: []FormatUnit{UOpcode, URR, UV8}},
	0x11: {Mnemonic: "less", Units: []FormatUnit{UOpcode, URR, UV8}},
	0x12: {Mnemonic: "lesseq", Units: []FormatUnit{UOpcode, URR, UV8}},
	0x13: {Mnemonic: "greatereq", Units: []FormatUnit{UOpcode, URR, UV8}},
	0x15: {Mnemonic: "shl2", Units: []FormatUnit{UOpcode, URR, UV8}},
	0x16: {Mnemonic: "shr2", Units: []FormatUnit{UOpcode, URR, UV8}},
	0x17: {Mnemonic: "ashr2", Units: []FormatUnit{UOpcode, URR, UV8}},
	0x18: {Mnemonic: "and2", Units: []FormatUnit{UOpcode, URR, UV8}},
	0x19: {Mnemonic: "or2", Units: []FormatUnit{UOpcode, URR, UV8}},
	0x1a: {Mnemonic: "xor2", Units: []FormatUnit{UOpcode, URR, UV8}},
	0x1b: {Mnemonic: "exp", Units: []FormatUnit{UOpcode, URR, UV8}},
	0x1c: {Mnemonic: "typeof", Units: []FormatUnit{UOpcode, URR}},
	0x1d: {Mnemonic: "tonumber", Units: []FormatUnit{UOpcode, URR}},
	0x1e: {Mnemonic: "tonumeric", Units: []FormatUnit{UOpcode, URR}},
	0x1f: {Mnemonic: "neg", Units: []FormatUnit{UOpcode, URR}},
	0x20: {Mnemonic: "not", Units: []FormatUnit{UOpcode, URR}},
	0x21: {Mnemonic: "inc", Units: []FormatUnit{UOpcode, URR}},
	0x22: {Mnemonic: "dec", Units: []FormatUnit{UOpcode, URR}},
	0x23: {Mnemonic: "istrue", Units: []FormatUnit{UOpcode, URR}},
	0x24: {Mnemonic: "isfalse", Units: []FormatUnit{UOpcode, URR}},
	0x25: {Mnemonic: "isin", Units: []FormatUnit{UOpcode, URR, UV8}},
	0x26: {Mnemonic: "instanceof", Units: []FormatUnit{UOpcode, URR, UV8}},
	0x27: {Mnemonic: "strictnoteq", Units: []FormatUnit{UOpcode, URR, UV8}},
	0x28: {Mnemonic: "stricteq", Units: []FormatUnit{UOpcode, URR, UV8}},
	0x29: {Mnemonic: "callarg0", Units: []FormatUnit{UOpcode, URR}},
	0x2a: {Mnemonic: "callarg1", Units: []FormatUnit{UOpcode, URR, UV8}},
	0x2b: {Mnemonic: "callargs2", Units: []FormatUnit{UOpcode, URR, UV8, UV8}},
	0x2c: {Mnemonic: "callargs3", Units: []FormatUnit{UOpcode, URR, UV8, UV8, UV8}},
	0x2d: {Mnemonic: "callthis0", Units: []FormatUnit{UOpcode, URR, UV8}},
	0x2e: {Mnemonic: "callthis1", Units: []FormatUnit{UOpcode, URR, UV8, UV8}},
	0x2f: {Mnemonic: "callthis2", Units: []FormatUnit{UOpcode, URR, UV8, UV8, UV8}},
	0x30: {Mnemonic: "callthis3", Units: []FormatUnit{UOpcode, URR, UV8, UV8, UV8, UV8}},
	0x31: {Mnemonic: "callthisrange", Units: []FormatUnit{UOpcode, URR, UImm8, UV8}},
	0x32: {Mnemonic: "supercallthisrange", Units: []FormatUnit{UOpcode, URR, UImm8, UV8}},
	0x33: {Mnemonic: "definefunc", Units: []FormatUnit{UOpcode, URR, UMethodID, UImm8}},
	0x34: {Mnemonic: "definemethod", Units: []FormatUnit{UOpcode, URR, UMethodID, UImm8}},
	0x35: {Mnemonic: "defineclasswithbuffer", Units: []FormatUnit{UOpcode, URR, UMethodID, ULiteralID, UImm16, UV8}},
	0x36: {Mnemonic: "getnextpropname", Units: []FormatUnit{UOpcode, UV8}},
	0x37: {Mnemonic: "ldobjbyvalue", Units: []FormatUnit{UOpcode, URR, UV8}},
	0x38: {Mnemonic: "stobjbyvalue", Units: []FormatUnit{UOpcode, URR, UV8, UV8}},
	0x39: {Mnemonic: "ldsuperbyvalue", Units: []FormatUnit{UOpcode, URR, UV8}},
	0x3a: {Mnemonic: "ldobjbyindex", Units: []FormatUnit{UOpcode, URR, UImm16}},
	0x3b: {Mnemonic: "stobjbyindex", Units: []FormatUnit{UOpcode, URR, UV8, UImm16}},
	0x3c: {Mnemonic: "ldlexvar", Units: []FormatUnit{UOpcode, UImm4Imm4}},
	0x3d: {Mnemonic: "stlexvar", Units: []FormatUnit{UOpcode, UImm4Imm4}},
	0x3e: {Mnemonic: "lda.str", Units: []FormatUnit{UOpcode, UStringID}},
	0x3f: {Mnemonic: "tryldglobalbyname", Units: []FormatUnit{UOpcode, URR, UStringID}},
	0x40: {Mnemonic: "trystglobalbyname", Units: []FormatUnit{UOpcode, URR, UStringID}},
	0x41: {Mnemonic: "ldglobalvar", Units: []FormatUnit{UOpcode, URRRR, UStringID}},
	0x42: {Mnemonic: "ldobjbyname", Units: []FormatUnit{UOpcode, UImm8, UStringID}},
	0x43: {Mnemonic: "stobjbyname", Units: []FormatUnit{UOpcode, URR, UStringID, UV8}},
	0x44: {Mnemonic: "mov", Units: []FormatUnit{UOpcode, UV4V4}},
	0x45: {Mnemonic: "mov", Units: []FormatUnit{UOpcode, UV8, UV8}},
	0x46: {Mnemonic: "ldsuperbyname", Units: []FormatUnit{UOpcode, URR, UStringID}},
	0x47: {Mnemonic: "stconsttoglobalrecord", Units: []FormatUnit{UOpcode, URRRR, UStringID}},
	0x48: {Mnemonic: "stconsttoglobalrecord", Units: []FormatUnit{UOpcode, URRRR, UStringID}},
	0x49: {Mnemonic: "ldthisbyname", Units: []FormatUnit{UOpcode, URR, UStringID}},
	0x4a: {Mnemonic: "stthisbyname", Units: []FormatUnit{UOpcode, URR, UStringID}},
	0x4b: {Mnemonic: "ldthisbyvalue", Units: []FormatUnit{UOpcode, URR}},
	0x4c: {Mnemonic: "stthisbyvalue", Units: []FormatUnit{UOpcode, URR, UV8}},
	0x4d: {Mnemonic: "jmp", Units: []FormatUnit{UOpcode, UImm8}},
	0x4e: {Mnemonic: "jmp", Units: []FormatUnit{UOpcode, UImm16}},
	0x4f: {Mnemonic: "jeqz", Units: []FormatUnit{UOpcode, UImm8}},
	0x50: {Mnemonic: "jeqz", Units: []FormatUnit{UOpcode, UImm16}},
	0x51: {Mnemonic: "jnez", Units: []FormatUnit{UOpcode, UImm8}},
	0x52: {Mnemonic: "jstricteqz", Units: []FormatUnit{UOpcode, UImm8}},
	0x53: {Mnemonic: "jnstricteqz", Units: []FormatUnit{UOpcode, UImm8}},
	0x54: {Mnemonic: "jeqnull", Units: []FormatUnit{UOpcode, UImm8}},
	0x55: {Mnemonic: "jnenull", Units: []FormatUnit{UOpcode, UImm8}},
	0x56: {Mnemonic: "jstricteqnull", Units: []FormatUnit{UOpcode, UImm8}},
	0x57: {Mnemonic: "jnstricteqnull", Units: []FormatUnit{UOpcode, UImm8}},
	0x58: {Mnemonic: "jequndefined", Units: []FormatUnit{UOpcode, UImm8}},
	0x59: {Mnemonic: "jneundefined", Units: []FormatUnit{UOpcode, UImm8}},
	0x5a: {Mnemonic: "jstrictequndefined", Units: []FormatUnit{UOpcode, UImm8}},
	0x5b: {Mnemonic: "jnstrictequndefined", Units: []FormatUnit{UOpcode, UImm8}},
	0x5c: {Mnemonic: "jeq", Units: []FormatUnit{UOpcode, UV8, UImm8}},
	0x5d: {Mnemonic: "jne", Units: []FormatUnit{UOpcode, UV8, UImm8}},
	0x5e: {Mnemonic: "jstricteq", Units: []FormatUnit{UOpcode, UV8, UImm8}},
	0x5f: {Mnemonic: "jnstricteq", Units: []FormatUnit{UOpcode, UV8, UImm8}},
	0x60: {Mnemonic: "lda", Units: []FormatUnit{UOpcode, UV8}},
	0x61: {Mnemonic: "sta", Units: []FormatUnit{UOpcode, UV8}},
	0x62: {Mnemonic: "ldai", Units: []FormatUnit{UOpcode, UImm32}},
	0x63: {Mnemonic: "fldai", Units: []FormatUnit{UOpcode, UImm64}},
	0x64: {Mnemonic: "return", Units: []FormatUnit{UOpcode}},
	0x65: {Mnemonic: "returnundefined", Units: []FormatUnit{UOpcode}},
	0x66: {Mnemonic: "getpropiterator", Units: []FormatUnit{UOpcode}},
	0x67: {Mnemonic: "getiterator", Units: []FormatUnit{UOpcode, URR}},
	0x68: {Mnemonic: "closeiterator", Units: []FormatUnit{UOpcode, URR, UV8}},
	0x69: {Mnemonic: "poplexenv", Units: []FormatUnit{UOpcode}},
	0x6a: {Mnemonic: "ldnan", Units: []FormatUnit{UOpcode}},
	0x6b: {Mnemonic: "ldinfinity", Units: []FormatUnit{UOpcode}},
	0x6c: {Mnemonic: "getunmappedargs", Units: []FormatUnit{UOpcode}},
	0x6d: {Mnemonic: "ldglobal", Units: []FormatUnit{UOpcode}},
	0x6e: {Mnemonic: "ldnewtarget", Units: []FormatUnit{UOpcode}},
	0x6f: {Mnemonic: "ldthis", Units: []FormatUnit{UOpcode}},
	0x70: {Mnemonic: "ldhole", Units: []FormatUnit{UOpcode}},
	0x71: {Mnemonic: "createregexpwithliteral", Units: []FormatUnit{UOpcode, URR, UMethodID, UImm8}},
	0x72: {Mnemonic: "createregexpwithliteral", Units: []FormatUnit{UOpcode, URRRR, UStringID, UImm8}},
	0x73: {Mnemonic: "callrange", Units: []FormatUnit{UOpcode, URR, UImm8, UV8}},
	0x74: {Mnemonic: "definefunc", Units: []FormatUnit{UOpcode, URRRR, UMethodID, UImm8}},
	0x75: {Mnemonic: "defineclasswithbuffer", Units: []FormatUnit{UOpcode, URRRR, UMethodID, ULiteralID, UImm16, UV8}},
	0x76: {Mnemonic: "gettemplateobject", Units: []FormatUnit{UOpcode, URR}},
	0x77: {Mnemonic: "setobjectwithproto", Units: []FormatUnit{UOpcode, URR, UV8}},
	0x78: {Mnemonic: "stownbyvalue", Units: []FormatUnit{UOpcode, URR, UV8, UV8}},
	0x79: {Mnemonic: "stownbyindex", Units: []FormatUnit{UOpcode, URR, UV8, UImm16}},
	0x7a: {Mnemonic: "stownbyname", Units: []FormatUnit{UOpcode, URR, UStringID, UV8}},
	0x7b: {Mnemonic: "getmodulenamespace", Units: []FormatUnit{UOpcode, UImm8}},
	0x7c: {Mnemonic: "stmodulevar", Units: []FormatUnit{UOpcode, UImm8}},
	0x7d: {Mnemonic: "ldlocalmodulevar", Units: []FormatUnit{UOpcode, UImm8}},
	0x7e: {Mnemonic: "ldexternalmodulevar", Units: []FormatUnit{UOpcode, UImm8}},
	0x7f: {Mnemonic: "stglobalvar", Units: []FormatUnit{UOpcode, URRRR, UStringID}},
	0x80: {Mnemonic: "createemptyarray", Units: []FormatUnit{UOpcode, URRRR}},
	0x81: {Mnemonic: "createarraywithbuffer", Units: []FormatUnit{UOpcode, URRRR, ULiteralID}},
	0x82: {Mnemonic: "createobjectwithbuffer", Units: []FormatUnit{UOpcode, URRRR, ULiteralID}},
	0x83: {Mnemonic: "newobjrange", Units: []FormatUnit{UOpcode, URRRR, UImm8, UV8}},
	0x84: {Mnemonic: "typeof", Units: []FormatUnit{UOpcode, URRRR}},
	0x85: {Mnemonic: "ldobjbyvalue", Units: []FormatUnit{UOpcode, URRRR, UV8}},
	0x86: {Mnemonic: "stobjbyvalue", Units: []FormatUnit{UOpcode, URRRR, UV8, UV8}},
	0x87: {Mnemonic: "ldsuperbyvalue", Units: []FormatUnit{UOpcode, URRRR, UV8}},
	0xad: {Mnemonic: "ldsymbol", Units: []FormatUnit{UOpcode}},
	0xae: {Mnemonic: "asyncfunctionenter", Units: []FormatUnit{UOpcode}},
	0xaf: {Mnemonic: "ldfunction", Units: []FormatUnit{UOpcode}},
	0xb0: {Mnemonic: "debugger", Units: []FormatUnit{UOpcode}},
	0xb1: {Mnemonic: "creategeneratorobj", Units: []FormatUnit{UOpcode, UV8}},
	0xb2: {Mnemonic: "createiterresultobj", Units: []FormatUnit{UOpcode, UV8, UV8}},
	0xb3: {Mnemonic: "createobjectwithexcludedkeys", Units: []FormatUnit{UOpcode, UImm8, UV8, UV8}},
	0xb4: {Mnemonic: "newobjapply", Units: []FormatUnit{UOpcode, URR, UV8}},
	0xb5: {Mnemonic: "newobjapply", Units: []FormatUnit{UOpcode, URRRR, UV8}},
	0xb6: {Mnemonic: "newlexenvwithname", Units: []FormatUnit{UOpcode, UImm8, ULiteralID}},
	0xb7: {Mnemonic: "createasyncgeneratorobj", Units: []FormatUnit{UOpcode, UV8}},
	0xb8: {Mnemonic: "asyncgeneratorresolve", Units: []FormatUnit{UOpcode, UV8, UV8, UV8}},
	0xb9: {Mnemonic: "supercallspread", Units: []FormatUnit{UOpcode, URR, UV8}},
	0xba: {Mnemonic: "apply", Units: []FormatUnit{UOpcode, URR, UV8, UV8}},
	0xbb: {Mnemonic: "supercallarrowrange", Units: []FormatUnit{UOpcode, URR, UImm8, UV8}},
	0xbc: {Mnemonic: "definegettersetterbyvalue", Units: []FormatUnit{UOpcode, UV8, UV8, UV8, UV8}},
	0xbd: {Mnemonic: "dynamicimport", Units: []FormatUnit{UOpcode}},
	0xbe: {Mnemonic: "definemethod", Units: []FormatUnit{UOpcode, URRRR, UMethodID, UImm8}},
	0xbf: {Mnemonic: "resumegenerator", Units: []FormatUnit{UOpcode}},
	0xc0: {Mnemonic: "getresumemode", Units: []FormatUnit{UOpcode}},
	0xc1: {Mnemonic: "gettemplateobject", Units: []FormatUnit{UOpcode, URRRR}},
	0xc2: {Mnemonic: "delobjprop", Units: []FormatUnit{UOpcode, UV8}},
	0xc3: {Mnemonic: "suspendgenerator", Units: []FormatUnit{UOpcode, UV8}},
	0xc4: {Mnemonic: "asyncfunctionawaituncaught", Units: []FormatUnit{UOpcode, UV8}},
	0xc5: {Mnemonic: "copydataproperties", Units: []FormatUnit{UOpcode, UV8}},
	0xc6: {Mnemonic: "starrayspread", Units: []FormatUnit{UOpcode, UV8, UV8}},
	0xc7: {Mnemonic: "setobjectwithproto", Units: []FormatUnit{UOpcode, URRRR, UV8}},
	0xc8: {Mnemonic: "stownbyvalue", Units: []FormatUnit{UOpcode, URRRR, UV8, UV8}},
	0xc9: {Mnemonic: "stsuperbyvalue", Units: []FormatUnit{UOpcode, UImm8, UV8, UV8}},
	0xca: {Mnemonic: "stsuperbyvalue", Units: []FormatUnit{UOpcode, URRRR, UV8, UV8}},
	0xcb: {Mnemonic: "stownbyindex", Units: []FormatUnit{UOpcode, URRRR, UV8, UImm16}},
	0xcc: {Mnemonic: "stownbyname", Units: []FormatUnit{UOpcode, URRRR, UStringID, UV8}},
	0xcd: {Mnemonic: "asyncfunctionresolve", Units: []FormatUnit{UOpcode}},
	0xce: {Mnemonic: "asyncfunctionreject", Units: []FormatUnit{UOpcode}},
	0xcf: {Mnemonic: "copyrestargs", Units: []FormatUnit{UOpcode, UImm8}},
	0xd0: {Mnemonic: "stsuperbyname", Units: []FormatUnit{UOpcode, URR, UStringID, UV8}},
	0xd1: {Mnemonic: "stsuperbyname", Units: []FormatUnit{UOpcode, URRRR, UStringID, UV8}},
	0xd2: {Mnemonic: "stownbyvaluewithnameset", Units: []FormatUnit{UOpcode, URRRR, UV8, UV8}},
	0xd3: {Mnemonic: "ldbigint", Units: []FormatUnit{UOpcode, UStringID}},
	0xd4: {Mnemonic: "stownbynamewithnameset", Units: []FormatUnit{UOpcode, URRRR, UStringID, UV8}},
	0xd5: {Mnemonic: "nop", Units: []FormatUnit{UOpcode}},
	0xd6: {Mnemonic: "setgeneratorstate", Units: []FormatUnit{UOpcode, UImm8}},
	0xd7: {Mnemonic: "getasynciterator", Units: []FormatUnit{UOpcode, URR}},
	0xd8: {Mnemonic: "ldprivateproperty", Units: []FormatUnit{UOpcode, URR, UImm16, UImm16}},
	0xd9: {Mnemonic: "stprivateproperty", Units: []FormatUnit{UOpcode, URR, UImm16, UImm16, UV8}},
	0xda: {Mnemonic: "testin", Units: []FormatUnit{UOpcode, URR, UImm16, UImm16}},
	0xdb: {Mnemonic: "definefieldbyname", Units: []FormatUnit{UOpcode, URR, UStringID, UV8}},
	0xfb: {Mnemonic: "callruntime.notifyconcurrentresult", Units: []FormatUnit{UPrefixOpcode}},
	0xfd: {Mnemonic: "wide.createobjectwithexcludedkeys", Units: []FormatUnit{UPrefixOpcode, UImm16, UV8, UV8}},
	0xfe: {Mnemonic: "thrown", Units: []FormatUnit{UPrefixOpcode}},
}

// prefixOpcodes is the two-byte prefix opcode table, keyed by a
// little-endian uint16 read of (prefixByte, secondaryByte) — the same
// read convention github.com/arkbc/abcdis/internal/cursor.U16 uses, so a
// lookup is a direct cursor.U16 read at the instruction cursor (spec.md
// §4.9). Families: 0xfb callruntime.*, 0xfd wide.*, 0xfe throw.*.
var prefixOpcodes = map[uint16]Entry{
	0x01fb: {Mnemonic: "callruntime.definefieldbyvalue", Units: []FormatUnit{UPrefixOpcode, URR, UV8, UV8}},
	0x01fd: {Mnemonic: "wide.newobjrange", Units: []FormatUnit{UPrefixOpcode, UImm16, UV8}},
	0x01fe: {Mnemonic: "throw.notexists", Units: []FormatUnit{UPrefixOpcode}},
	0x02fb: {Mnemonic: "callruntime.definefieldbyindex", Units: []FormatUnit{UPrefixOpcode, URR, UImm32, UV8}},
	0x02fd: {Mnemonic: "wide.newlexenv", Units: []FormatUnit{UPrefixOpcode, UImm16}},
	0x02fe: {Mnemonic: "throw.patternnoncoercible", Units: []FormatUnit{UPrefixOpcode}},
	0x03fd: {Mnemonic: "wide.newlexenvwithname", Units: []FormatUnit{UPrefixOpcode, UImm16, ULiteralID}},
	0x03fe: {Mnemonic: "throw.deletesuperproperty", Units: []FormatUnit{UPrefixOpcode}},
	0x04fb: {Mnemonic: "callruntime.createprivateproperty", Units: []FormatUnit{UPrefixOpcode, UImm16, ULiteralID}},
	0x04fd: {Mnemonic: "wide.callrange", Units: []FormatUnit{UPrefixOpcode, UImm16, UV8}},
	0x04fe: {Mnemonic: "throw.constassignment", Units: []FormatUnit{UPrefixOpcode, UV8}},
	0x05fb: {Mnemonic: "callruntime.defineprivateproperty", Units: []FormatUnit{UPrefixOpcode, URR, UImm16, UImm16, UV8}},
	0x05fd: {Mnemonic: "wide.callthisrange", Units: []FormatUnit{UPrefixOpcode, UImm16, UV8}},
	0x05fe: {Mnemonic: "throw.ifnotobject", Units: []FormatUnit{UPrefixOpcode, UV8}},
	0x06fb: {Mnemonic: "callruntime.callinit", Units: []FormatUnit{UPrefixOpcode, URR, UV8}},
	0x06fd: {Mnemonic: "wide.supercallthisrange", Units: []FormatUnit{UPrefixOpcode, UImm16, UV8}},
	0x06fe: {Mnemonic: "throw.undefinedifhole", Units: []FormatUnit{UPrefixOpcode, UV8, UV8}},
	0x07fb: {Mnemonic: "callruntime.definesendableclass", Units: []FormatUnit{UPrefixOpcode, URRRR, UMethodID, ULiteralID, UImm16, UV8}},
	0x07fd: {Mnemonic: "wide.supercallarrowrange", Units: []FormatUnit{UPrefixOpcode, UImm16, UV8}},
	0x07fe: {Mnemonic: "throw.ifsupernotcorrectcall", Units: []FormatUnit{UPrefixOpcode, UImm8}},
	0x08fb: {Mnemonic: "callruntime.ldsendableclass", Units: []FormatUnit{UPrefixOpcode, UImm16}},
	0x08fd: {Mnemonic: "wide.ldobjbyindex", Units: []FormatUnit{UPrefixOpcode, UImm32}},
	0x08fe: {Mnemonic: "throw.ifsupernotcorrectcall", Units: []FormatUnit{UPrefixOpcode, UImm16}},
	0x09fd: {Mnemonic: "wide.stobjbyindex", Units: []FormatUnit{UPrefixOpcode, UV8, UImm32}},
	0x09fe: {Mnemonic: "throw.undefinedifholewithname", Units: []FormatUnit{UPrefixOpcode, UStringID}},
	0x0afd: {Mnemonic: "wide.stownbyindex", Units: []FormatUnit{UPrefixOpcode, UV8, UImm32}},
	0x0bfd: {Mnemonic: "wide.copyrestargs", Units: []FormatUnit{UPrefixOpcode, UImm16}},
	0x0cfd: {Mnemonic: "wide.ldlexvar", Units: []FormatUnit{UPrefixOpcode, UImm16, UImm16}},
	0x0dfd: {Mnemonic: "wide.stlexvar", Units: []FormatUnit{UPrefixOpcode, UImm16, UImm16}},
	0x0efd: {Mnemonic: "wide.getmodulenamespace", Units: []FormatUnit{UPrefixOpcode, UImm16}},
	0x0ffd: {Mnemonic: "wide.stmodulevar", Units: []FormatUnit{UPrefixOpcode, UImm16}},
	0x10fd: {Mnemonic: "wide.ldlocalmodulevar", Units: []FormatUnit{UPrefixOpcode, UImm16}},
	0x11fd: {Mnemonic: "wide.ldexternalmodulevar", Units: []FormatUnit{UPrefixOpcode, UImm16}},
	0x12fd: {Mnemonic: "wide.ldpatchvar", Units: []FormatUnit{UPrefixOpcode, UImm16}},
	0x13fd: {Mnemonic: "wide.stpatchvar", Units: []FormatUnit{UPrefixOpcode, UImm16}},
}