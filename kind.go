// Copyright © 2025 The gnaw authors

package gnaw

import "fmt"

// ErrorKind identifies the built-in parsing operation, or failure
// mode, that raised an error. The set is closed and the numeric codes
// are stable across releases so that reports and logs stay decodable;
// gaps in the numbering belong to kinds that were retired long ago.
// Several kinds predate the current combinator surface and remain
// reserved.
type ErrorKind uint32

const (
	KindTag                   ErrorKind = 1
	KindMapRes                ErrorKind = 2
	KindMapOpt                ErrorKind = 3
	KindAlt                   ErrorKind = 4
	KindIsNot                 ErrorKind = 5
	KindIsA                   ErrorKind = 6
	KindSeparatedList         ErrorKind = 7
	KindSeparatedNonEmptyList ErrorKind = 8
	KindMany1                 ErrorKind = 9
	KindCount                 ErrorKind = 10
	KindTakeUntil             ErrorKind = 12
	KindLengthValue           ErrorKind = 15
	KindTagClosure            ErrorKind = 16
	KindAlpha                 ErrorKind = 17
	KindDigit                 ErrorKind = 18
	KindAlphaNumeric          ErrorKind = 19
	KindSpace                 ErrorKind = 20
	KindMultiSpace            ErrorKind = 21
	KindLengthValueFn         ErrorKind = 22
	KindEOF                   ErrorKind = 23
	KindSwitch                ErrorKind = 27
	KindTagBits               ErrorKind = 28
	KindOneOf                 ErrorKind = 29
	KindNoneOf                ErrorKind = 30
	KindChar                  ErrorKind = 40
	KindCrLf                  ErrorKind = 41
	KindRegexpMatch           ErrorKind = 42
	KindRegexpMatches         ErrorKind = 43
	KindRegexpFind            ErrorKind = 44
	KindRegexpCapture         ErrorKind = 45
	KindRegexpCaptures        ErrorKind = 46
	KindTakeWhile1            ErrorKind = 47
	KindComplete              ErrorKind = 48
	KindFix                   ErrorKind = 49
	KindEscaped               ErrorKind = 50
	KindEscapedTransform      ErrorKind = 51
	KindNonEmpty              ErrorKind = 56
	KindManyMN                ErrorKind = 57
	KindHexDigit              ErrorKind = 59
	KindOctDigit              ErrorKind = 61
	KindMany0                 ErrorKind = 62
	KindNot                   ErrorKind = 63
	KindPermutation           ErrorKind = 64
	KindManyTill              ErrorKind = 65
	KindVerify                ErrorKind = 66
	KindTakeTill1             ErrorKind = 67
	KindTakeWhileMN           ErrorKind = 69
	KindTooLarge              ErrorKind = 70
	KindMany0Count            ErrorKind = 71
	KindMany1Count            ErrorKind = 72
	KindFloat                 ErrorKind = 73
	KindSatisfy               ErrorKind = 74
	KindFail                  ErrorKind = 75
)

// kindTable lists every kind in ascending code order. Kinds() and the
// lookup maps derive from it.
var kindTable = []struct {
	kind ErrorKind
	name string
	desc string
}{
	{KindTag, "Tag", "expected a fixed sequence"},
	{KindMapRes, "MapRes", "conversion of parser output failed"},
	{KindMapOpt, "MapOpt", "transformation of parser output produced no value"},
	{KindAlt, "Alt", "no alternative matched"},
	{KindIsNot, "IsNot", "expected characters outside the given set"},
	{KindIsA, "IsA", "expected characters from the given set"},
	{KindSeparatedList, "SeparatedList", "separated list stalled"},
	{KindSeparatedNonEmptyList, "SeparatedNonEmptyList", "expected a nonempty separated list"},
	{KindMany1, "Many1", "expected at least one repetition"},
	{KindCount, "Count", "expected an exact number of repetitions"},
	{KindTakeUntil, "TakeUntil", "terminating sequence not found"},
	{KindLengthValue, "LengthValue", "length prefix does not describe the data"},
	{KindTagClosure, "TagClosure", "computed sequence mismatch"},
	{KindAlpha, "Alpha", "expected alphabetic characters"},
	{KindDigit, "Digit", "expected decimal digits"},
	{KindAlphaNumeric, "AlphaNumeric", "expected alphanumeric characters"},
	{KindSpace, "Space", "expected spaces or tabs"},
	{KindMultiSpace, "MultiSpace", "expected whitespace"},
	{KindLengthValueFn, "LengthValueFn", "computed length does not describe the data"},
	{KindEOF, "EOF", "end of input expected, or reached too soon"},
	{KindSwitch, "Switch", "no switch case applied"},
	{KindTagBits, "TagBits", "bit-level sequence mismatch"},
	{KindOneOf, "OneOf", "expected one of the given characters"},
	{KindNoneOf, "NoneOf", "expected none of the given characters"},
	{KindChar, "Char", "expected a specific character"},
	{KindCrLf, "CrLf", "expected a line ending"},
	{KindRegexpMatch, "RegexpMatch", "regular expression did not match at the current position"},
	{KindRegexpMatches, "RegexpMatches", "regular expression matched nowhere in the input"},
	{KindRegexpFind, "RegexpFind", "regular expression not found in the input"},
	{KindRegexpCapture, "RegexpCapture", "regular expression captured nothing"},
	{KindRegexpCaptures, "RegexpCaptures", "regular expression captured nothing anywhere in the input"},
	{KindTakeWhile1, "TakeWhile1", "expected at least one matching character"},
	{KindComplete, "Complete", "parser demanded more input than exists"},
	{KindFix, "Fix", "recursive parser failed"},
	{KindEscaped, "Escaped", "malformed escaped sequence"},
	{KindEscapedTransform, "EscapedTransform", "malformed escaped sequence during rewrite"},
	{KindNonEmpty, "NonEmpty", "expected nonempty input"},
	{KindManyMN, "ManyMN", "repetition count out of bounds"},
	{KindHexDigit, "HexDigit", "expected hexadecimal digits"},
	{KindOctDigit, "OctDigit", "expected octal digits"},
	{KindMany0, "Many0", "repetition stalled without consuming input"},
	{KindNot, "Not", "negated parser matched"},
	{KindPermutation, "Permutation", "not every permuted parser matched"},
	{KindManyTill, "ManyTill", "repetition never reached its terminator"},
	{KindVerify, "Verify", "parsed value rejected by predicate"},
	{KindTakeTill1, "TakeTill1", "expected at least one character before the terminator"},
	{KindTakeWhileMN, "TakeWhileMN", "matching run shorter than the required minimum"},
	{KindTooLarge, "TooLarge", "requested length is too large"},
	{KindMany0Count, "Many0Count", "counted repetition stalled without consuming input"},
	{KindMany1Count, "Many1Count", "expected at least one counted repetition"},
	{KindFloat, "Float", "expected a floating point number"},
	{KindSatisfy, "Satisfy", "character rejected by predicate"},
	{KindFail, "Fail", "parser always fails"},
}

var (
	kindNames = make(map[ErrorKind]string, len(kindTable))
	kindDescs = make(map[ErrorKind]string, len(kindTable))
)

func init() {
	for _, e := range kindTable {
		kindNames[e.kind] = e.name
		kindDescs[e.kind] = e.desc
	}
}

// Kinds returns every kind in the taxonomy in ascending code order.
func Kinds() []ErrorKind {
	ks := make([]ErrorKind, len(kindTable))
	for i, e := range kindTable {
		ks[i] = e.kind
	}
	return ks
}

// Code returns the kind's stable numeric code.
func (k ErrorKind) Code() uint32 {
	return uint32(k)
}

// String returns the short stable name used inside rendered reports.
func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", uint32(k))
}

// Description returns a human-readable phrase for the kind.
func (k ErrorKind) Description() string {
	if s, ok := kindDescs[k]; ok {
		return s
	}
	return "unknown error kind"
}
