package format

import "github.com/redorca/astyle-github/internal/style"

// isPointerOrRef reports whether tok is a `*` or `&` operator token.
func isPointerOrRef(tok Token) bool {
	return tok.Kind == TOp && (tok.Text == "*" || tok.Text == "&")
}

// looksLikeTypeWord is a coarse heuristic for "this word can start (or
// continue) a declared type" as opposed to being a value: it excludes
// recognized headers/keywords, which never precede a pointer/reference
// declarator.
func looksLikeTypeWord(tok Token) bool {
	return tok.Kind == TWord && tok.Header == nil
}

// pointerRun is one maximal run of consecutive `*`/`&` tokens found
// between a type word and a declared name, e.g. the `**` in `int **q`.
type pointerRun struct {
	start, end int // token indices, end exclusive
}

// findFirstDeclaratorRun locates the first `*`/`&` run in toks that sits
// between a type word and a name word — the pattern
// classifyPointerOrReference in a byte-oriented scanner would call a
// "pointer or reference to a declared variable" (§4.1.4).
func findFirstDeclaratorRun(toks []Token) (pointerRun, bool) {
	for i := 1; i < len(toks); i++ {
		if !isPointerOrRef(toks[i]) {
			continue
		}
		if !looksLikeTypeWord(toks[i-1]) {
			continue
		}
		// Every token before the type word must itself be a plain word
		// (e.g. "unsigned int") — as soon as an operator or literal
		// appears in the prefix (`total = a`) this can no longer be the
		// start of a declaration, only an arithmetic expression.
		if !onlyWordsBefore(toks, i-1) {
			continue
		}
		j := i
		for j < len(toks) && isPointerOrRef(toks[j]) {
			j++
		}
		if j < len(toks) && toks[j].Kind == TWord {
			return pointerRun{start: i, end: j}, true
		}
	}
	return pointerRun{}, false
}

// findDeclaratorRuns locates every `*`/`&` run in a comma-separated
// declaration's declarator list: the first, established by
// findFirstDeclaratorRun as sitting between a type word and its name
// (`int *p`), then every later run that immediately follows the list's
// separating comma (`, **q`). A comma-led run after a confirmed first
// declarator is assumed to introduce another declarator of the same
// declaration — the type-word-prefix check that qualified the first run
// already ruled out a function call's argument list, which never starts
// with a bare, unparenthesized type word.
func findDeclaratorRuns(toks []Token) []pointerRun {
	first, ok := findFirstDeclaratorRun(toks)
	if !ok {
		return nil
	}
	runs := []pointerRun{first}
	for i := first.end; i < len(toks); i++ {
		if toks[i].Kind != TPunct || toks[i].Text != "," {
			continue
		}
		j := i + 1
		if j >= len(toks) || !isPointerOrRef(toks[j]) {
			continue
		}
		k := j
		for k < len(toks) && isPointerOrRef(toks[k]) {
			k++
		}
		if k < len(toks) && toks[k].Kind == TWord {
			runs = append(runs, pointerRun{start: j, end: k})
		}
	}
	return runs
}

func onlyWordsBefore(toks []Token, idx int) bool {
	for k := 0; k < idx; k++ {
		if toks[k].Kind != TWord {
			return false
		}
	}
	return true
}

// spaceAroundPointerRun reports whether a space belongs before and after
// a classified pointer/reference run under alignment mode a (§4.1.4):
//
//	TYPE:   `int* p`   space after, none before
//	MIDDLE: `int * p`  space both sides
//	NAME:   `int *p`   space before, none after
//	NONE:   `int *p`   left exactly as scanned (treated as NAME here,
//	                   since the tokenizer already discarded the
//	                   original spacing and NAME is the common source
//	                   convention this repo defaults to)
//
// isFirst distinguishes a declaration's first declarator, which has an
// actual type token to pull toward or away from, from a later one in a
// comma-separated list (`, **q`) that doesn't repeat the type — TYPE has
// nothing to pull the run to there, so a later declarator always falls
// back to NAME's shape regardless of the configured mode. MIDDLE has no
// such anchor dependency and applies uniformly to every declarator.
func spaceAroundPointerRun(a style.PointerAlignment, isFirst bool) (before, after bool) {
	if a == style.AlignMiddle {
		return true, true
	}
	if !isFirst {
		return true, false
	}
	switch a {
	case style.AlignType:
		return false, true
	default:
		return true, false
	}
}

// isObjCMethodCallOpen mirrors ASFormatter::isObjCMethodCall: a `[`
// starts an Objective-C message send, rather than continuing an array
// subscript, when it is NOT immediately preceded by an existing value —
// a plain identifier (`arr[0]`), or a completed sub-expression's `)`/`]`
// (`f()[0]`, `arr[i][j]`). Anything else preceding it — nothing at all
// (statement start), an operator, a recognized header like `if` or
// `while`, or another message send's own opening `[` (`[[self foo] bar]`)
// — means the brackets are opening a fresh expression, which for this
// grammar is a message send. A word that is not in the header table,
// such as `return`, counts as a value, so `return [x foo]` reads as a
// subscript. Message-send brackets take part in the same
// continuation-indent tracking as parens (§4.2.2); a plain subscript
// does not.
func isObjCMethodCallOpen(toks []Token, idx int) bool {
	if idx == 0 {
		return true
	}
	prev := toks[idx-1]
	switch {
	case prev.Kind == TWord && prev.Header == nil:
		return false
	case prev.Kind == TPunct && (prev.Text == ")" || prev.Text == "]"):
		return false
	default:
		return true
	}
}
