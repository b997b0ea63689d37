// Copyright © 2025 The gnaw authors

package gnaw

import "regexp"

// The regexp parsers adapt a compiled *regexp.Regexp to the parser
// surface. Matches are located through the index variants of the
// regexp API so every returned value slices back into the input.

func reMatch[I Input](re *regexp.Regexp, in I) bool {
	switch v := any(in).(type) {
	case string:
		return re.MatchString(v)
	case []byte:
		return re.Match(v)
	}
	return false
}

func reFindIndex[I Input](re *regexp.Regexp, in I) []int {
	switch v := any(in).(type) {
	case string:
		return re.FindStringIndex(v)
	case []byte:
		return re.FindIndex(v)
	}
	return nil
}

func reAllIndex[I Input](re *regexp.Regexp, in I) [][]int {
	switch v := any(in).(type) {
	case string:
		return re.FindAllStringIndex(v, -1)
	case []byte:
		return re.FindAllIndex(v, -1)
	}
	return nil
}

func reSubmatchIndex[I Input](re *regexp.Regexp, in I) []int {
	switch v := any(in).(type) {
	case string:
		return re.FindStringSubmatchIndex(v)
	case []byte:
		return re.FindSubmatchIndex(v)
	}
	return nil
}

func reAllSubmatchIndex[I Input](re *regexp.Regexp, in I) [][]int {
	switch v := any(in).(type) {
	case string:
		return re.FindAllStringSubmatchIndex(v, -1)
	case []byte:
		return re.FindAllSubmatchIndex(v, -1)
	}
	return nil
}

// groups slices the capture groups out of a submatch index vector.
// Absent groups come back as the zero value.
func groups[I Input](in I, loc []int) []I {
	out := make([]I, 0, len(loc)/2)
	for i := 0; i < len(loc); i += 2 {
		if loc[i] < 0 {
			var zero I
			out = append(out, zero)
			continue
		}
		out = append(out, in[loc[i]:loc[i+1]])
	}
	return out
}

// RegexpMatch succeeds when re matches anywhere in the input, consuming
// all of it and yielding it whole. Fails with KindRegexpMatch.
func RegexpMatch[I Input, E ParseError[I, E]](re *regexp.Regexp) Parser[I, I, E] {
	return func(in I) (I, I, *Err[E]) {
		if !reMatch(re, in) {
			var zero I
			return in, zero, NewError(MakeError[I, E](in, KindRegexpMatch))
		}
		return in[len(in):], in, nil
	}
}

// RegexpFind yields the first match of re, consuming through its end.
// Fails with KindRegexpFind.
func RegexpFind[I Input, E ParseError[I, E]](re *regexp.Regexp) Parser[I, I, E] {
	return func(in I) (I, I, *Err[E]) {
		loc := reFindIndex(re, in)
		if loc == nil {
			var zero I
			return in, zero, NewError(MakeError[I, E](in, KindRegexpFind))
		}
		return in[loc[1]:], in[loc[0]:loc[1]], nil
	}
}

// RegexpMatches yields every match of re, consuming through the end of
// the last one. At least one match is required; fails with
// KindRegexpMatches.
func RegexpMatches[I Input, E ParseError[I, E]](re *regexp.Regexp) Parser[I, []I, E] {
	return func(in I) (I, []I, *Err[E]) {
		locs := reAllIndex(re, in)
		if len(locs) == 0 {
			return in, nil, NewError(MakeError[I, E](in, KindRegexpMatches))
		}
		out := make([]I, len(locs))
		for i, loc := range locs {
			out[i] = in[loc[0]:loc[1]]
		}
		return in[locs[len(locs)-1][1]:], out, nil
	}
}

// RegexpCapture yields the first match of re as a capture list, the
// whole match first and each group after it, consuming through the end
// of the whole match. Fails with KindRegexpCapture.
func RegexpCapture[I Input, E ParseError[I, E]](re *regexp.Regexp) Parser[I, []I, E] {
	return func(in I) (I, []I, *Err[E]) {
		loc := reSubmatchIndex(re, in)
		if loc == nil {
			return in, nil, NewError(MakeError[I, E](in, KindRegexpCapture))
		}
		return in[loc[1]:], groups(in, loc), nil
	}
}

// RegexpCaptures yields the capture list of every match of re,
// consuming through the end of the last whole match. Fails with
// KindRegexpCaptures.
func RegexpCaptures[I Input, E ParseError[I, E]](re *regexp.Regexp) Parser[I, [][]I, E] {
	return func(in I) (I, [][]I, *Err[E]) {
		locs := reAllSubmatchIndex(re, in)
		if len(locs) == 0 {
			return in, nil, NewError(MakeError[I, E](in, KindRegexpCaptures))
		}
		out := make([][]I, len(locs))
		for i, loc := range locs {
			out[i] = groups(in, loc)
		}
		return in[locs[len(locs)-1][1]:], out, nil
	}
}
