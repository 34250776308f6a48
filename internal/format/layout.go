package format

import (
	"strings"

	"github.com/redorca/astyle-github/internal/langtable"
	"github.com/redorca/astyle-github/internal/lineinfo"
	"github.com/redorca/astyle-github/internal/style"
)

// scanLine turns one raw physical line into one or more FormattedLines,
// handling the block-comment continuation and *INDENT-OFF* passthrough
// cases before handing well-formed lines to the tokenizer and layout
// pass (§4.1's dispatch order: comment state first, everything else
// after).
func (f *Formatter) scanLine(raw string) []lineinfo.FormattedLine {
	if strings.TrimSpace(raw) == "" {
		return []lineinfo.FormattedLine{{Text: "", IsEmpty: true}}
	}

	if f.inBlockComment {
		fl := lineinfo.FormattedLine{Text: raw, IsCommentOnly: true, StartsInComment: true}
		if strings.Contains(raw, "*/") {
			f.inBlockComment = false
		}
		return []lineinfo.FormattedLine{fl}
	}

	if isIndentOffComment(raw) {
		f.indentOff = true
		return []lineinfo.FormattedLine{{Text: strings.TrimSpace(raw), IsCommentOnly: true, IndentOff: true}}
	}
	if isIndentOnComment(raw) {
		f.indentOff = false
		return []lineinfo.FormattedLine{{Text: strings.TrimSpace(raw), IsCommentOnly: true, IndentOn: true}}
	}
	if f.indentOff {
		return []lineinfo.FormattedLine{{Text: raw, IsEmpty: false}}
	}

	ls := newLineScanner(raw, f.tab)
	toks, stillOpen := ls.scanTokens(false)
	f.inBlockComment = stillOpen

	if len(toks) == 1 && toks[0].Kind == TPreprocessor {
		lines := f.layoutPreprocessorLine(toks[0].Text, hasNoPadMarker(raw))
		return lines
	}

	lines := f.layoutTokens(toks, raw)
	if hasNoPadMarker(raw) {
		for i := range lines {
			lines[i].NoPad = true
		}
	}
	if n := len(lines); n > 0 && strings.HasSuffix(strings.TrimRight(raw, " \t"), "\\") {
		lines[n-1].PreprocContinue = true
	}
	return lines
}

// layoutPreprocessorLine passes a preprocessor directive through close to
// verbatim (§4.1 preprocessor handling never reflows the directive body),
// only classifying which directive it is so the Beautifier can adjust
// its preprocessor-conditional indent stack (§4.2, "Preprocessor-indent
// stack").
func (f *Formatter) layoutPreprocessorLine(text string, noPad bool) []lineinfo.FormattedLine {
	fl := lineinfo.FormattedLine{Text: text, NoPad: noPad}
	body := strings.TrimSpace(strings.TrimPrefix(text, "#"))
	switch {
	case strings.HasPrefix(body, "if"):
		fl.Preproc = lineinfo.PreprocIf
	case strings.HasPrefix(body, "elif"):
		fl.Preproc = lineinfo.PreprocElif
	case strings.HasPrefix(body, "else"):
		fl.Preproc = lineinfo.PreprocElse
	case strings.HasPrefix(body, "endif"):
		fl.Preproc = lineinfo.PreprocEndif
	case strings.HasPrefix(body, "define"):
		fl.Preproc = lineinfo.PreprocDefine
		fl.PreprocContinue = strings.HasSuffix(strings.TrimRight(text, " \t"), "\\")
	default:
		fl.Preproc = lineinfo.PreprocOther
	}
	if fl.Preproc == lineinfo.PreprocDefine && fl.PreprocContinue {
		// carried purely for the Beautifier's benefit; the Formatter
		// itself does not need to remember define-continuation state
		// because each continuation line arrives as an ordinary
		// non-preprocessor-prefixed line and is laid out normally.
	}
	return []lineinfo.FormattedLine{fl}
}

// lineBuilder accumulates one output FormattedLine's text and event
// lists as layoutTokens walks the token stream.
type lineBuilder struct {
	sb   strings.Builder
	prev Token
	has  bool

	braces  []lineinfo.BraceEvent
	parens  []lineinfo.ParenEvent
	headers []lineinfo.HeaderEvent

	beginsOpenBrace, beginsCloseBrace, beginsComma bool
	opensComment, opensLineComment                 bool

	colon     lineinfo.ColonKind
	colonPos  int
	isCase    bool
	isDefault bool

	// forceSpaceBefore overrides the next token's own spaceBetween/
	// opNeedsSpace decision. Set only when a preceding token (a
	// consumed pointer/reference run) needs to dictate the spacing of
	// what follows it rather than let the follower decide on its own.
	forceSpaceBefore *bool

	// headerCloses counts top-level statement-ending `;` tokens seen so
	// far on this line (lineinfo.FormattedLine.HeaderCloses).
	headerCloses int
}

func (b *lineBuilder) empty() bool { return b.sb.Len() == 0 }
func (b *lineBuilder) pos() int    { return b.sb.Len() }

func (b *lineBuilder) put(text string, spaceBefore bool) {
	first := b.empty()
	if !first && spaceBefore {
		b.sb.WriteByte(' ')
	}
	if first {
		switch text {
		case "{":
			b.beginsOpenBrace = true
		case "}":
			b.beginsCloseBrace = true
		case ",":
			b.beginsComma = true
		}
	}
	b.sb.WriteString(text)
}

func (b *lineBuilder) finish() lineinfo.FormattedLine {
	return lineinfo.FormattedLine{
		Text:                 b.sb.String(),
		BeginsWithOpenBrace:  b.beginsOpenBrace,
		BeginsWithCloseBrace: b.beginsCloseBrace,
		BeginsWithComma:      b.beginsComma,
		OpensWithComment:     b.opensComment,
		OpensWithLineComment: b.opensLineComment,
		Braces:               b.braces,
		Parens:               b.parens,
		Headers:              b.headers,
		Colon:                b.colon,
		ColonPos:             b.colonPos,
		IsCase:               b.isCase,
		IsDefault:            b.isDefault,
		HeaderCloses:         b.headerCloses,
	}
}

// layoutTokens is the heart of the character/token stage: it decides
// inter-token spacing (§4.1's padding rules), brace classification and
// placement (§3, §4.1.3), pointer/reference alignment (§4.1.4), and
// colon disambiguation (§4.1 step 11), producing one or more finished
// FormattedLines from a single physical line's tokens.
func (f *Formatter) layoutTokens(toks []Token, raw string) []lineinfo.FormattedLine {
	ptrRuns := findDeclaratorRuns(toks)
	ptrRunIdx := 0

	var out []lineinfo.FormattedLine
	cur := &lineBuilder{}

	flush := func() {
		if cur.empty() {
			return
		}
		out = append(out, cur.finish())
		cur = &lineBuilder{}
	}

	for i := 0; i < len(toks); i++ {
		tok := toks[i]

		switch tok.Kind {
		case TComment, TLineComment:
			if cur.empty() {
				if tok.Kind == TLineComment {
					cur.opensLineComment = true
				} else {
					cur.opensComment = true
				}
			}
			cur.put(tok.Text, !cur.empty())
			cur.has = true

		case TString, TChar, TNumber:
			cur.put(tok.Text, spaceBetween(cur, tok, f.cfg))
			cur.prev, cur.has = tok, true

		case TWord:
			sp := spaceBetween(cur, tok, f.cfg)
			if cur.forceSpaceBefore != nil {
				sp = *cur.forceSpaceBefore
				cur.forceSpaceBefore = nil
			}
			cur.put(tok.Text, sp)
			if tok.Header != nil {
				cur.headers = append(cur.headers, lineinfo.HeaderEvent{Pos: cur.pos() - len(tok.Text), Header: tok.Header})
				f.stmtHeader = tok.Header
				if f.tab.ProbationHeaders[tok.Header] {
					// left on stmtHeader; a following brace still
					// resolves through classifyBrace normally, matching
					// the simplified probation handling described in
					// DESIGN.md (full re-scan-on-confirmation is not
					// implemented).
					_ = struct{}{}
				}
			}
			cur.prev, cur.has = tok, true

		case TPunct:
			switch tok.Text {
			case "{":
				sawAssign := f.sawAssign
				enclosing := lineinfo.Null
				if n := len(f.braceTypeStack); n > 0 {
					enclosing = f.braceTypeStack[n-1]
				}
				isEmpty := i+1 < len(toks) && toks[i+1].Kind == TPunct && toks[i+1].Text == "}"
				bt := classifyBrace(f.tab, braceContext{
					header:        f.stmtHeader,
					sawAssign:     sawAssign,
					parenDepth:    f.parenDepth,
					enclosingType: enclosing,
					isEmpty:       isEmpty,
					singleLine:    lineHasMatchingClose(toks, i),
				})
				f.braceTypeStack = append(f.braceTypeStack, bt)
				f.stmtHeader = nil
				f.sawAssign = false

				placement := resolvePlacement(f.cfg, bt)
				if placement == placeBreak && !cur.empty() {
					flush()
				} else if !cur.empty() {
					cur.sb.WriteByte(' ')
				}
				cur.braces = append(cur.braces, lineinfo.BraceEvent{Pos: cur.pos(), Open: true, Type: bt})
				if cur.empty() {
					cur.beginsOpenBrace = true
				}
				cur.sb.WriteString("{")
				cur.prev, cur.has = tok, true

				// An attached brace still gets its body exploded onto
				// its own line when BreakOneLineBlocks demands it and
				// the source wrote the whole block on one physical
				// line; RUN_IN is the one placement that deliberately
				// keeps the first statement cuddled against the brace.
				if placement == placeBreak || (placement != placeRunIn && f.cfg.BreakOneLineBlocks && bt.Has(lineinfo.SingleLine)) {
					flush()
				}

			case "}":
				var bt lineinfo.BraceType
				if n := len(f.braceTypeStack); n > 0 {
					bt = f.braceTypeStack[n-1]
					f.braceTypeStack = f.braceTypeStack[:n-1]
				} else {
					f.assertf("stray '}' with no matching open brace")
				}
				if f.cfg.BreakOneLineBlocks && bt.Has(lineinfo.SingleLine) && !cur.empty() {
					flush()
				}
				cur.braces = append(cur.braces, lineinfo.BraceEvent{Pos: cur.pos(), Open: false, Type: bt})
				if cur.empty() {
					cur.beginsCloseBrace = true
				}
				cur.sb.WriteString("}")
				cur.prev, cur.has = tok, true
				f.stmtHeader = nil
				f.sawAssign = false

				// A closing brace stays cuddled with a following
				// else/catch/finally/while only under an attach-family
				// brace style (§4.1.3); break-family styles always
				// isolate it, matching Allman/GNU rather than K&R. The
				// cuddled header can arrive either in the same toks slice
				// (source already wrote "} else") or merged in from the
				// following physical line by nextRawLine's forward-merge.
				cuddle := false
				if f.cfg.BraceFormatMode == style.BraceAttach || f.cfg.BraceFormatMode == style.BraceRunIn {
					if i+1 < len(toks) && isCuddleHeader(toks[i+1].Header) {
						cuddle = true
					}
				}
				if !cuddle {
					flush()
				}

			case "(":
				f.parenDepth++
				lastOnLine := isLastSignificant(toks, i)
				spaceBefore := false
				if cur.has {
					if cur.prev.Kind == TWord {
						spaceBefore = cur.prev.Header != nil || f.cfg.PadFirstParen
					} else {
						spaceBefore = spaceBetween(cur, tok, f.cfg)
					}
				}
				cur.put("(", spaceBefore)
				cur.parens = append(cur.parens, lineinfo.ParenEvent{Pos: cur.pos() - 1, Kind: lineinfo.Paren, Open: true, LastOnLine: lastOnLine})
				cur.prev, cur.has = tok, true

			case ")":
				if f.parenDepth > 0 {
					f.parenDepth--
				}
				cur.put(")", f.cfg.PadParensInside)
				cur.parens = append(cur.parens, lineinfo.ParenEvent{Pos: cur.pos() - 1, Kind: lineinfo.Paren, Open: false})
				cur.prev, cur.has = tok, true

			case "[":
				kind := lineinfo.Bracket
				if isObjCMethodCallOpen(toks, i) {
					kind = lineinfo.Paren
				}
				f.bracketKindStack = append(f.bracketKindStack, kind)
				cur.put("[", false)
				cur.parens = append(cur.parens, lineinfo.ParenEvent{Pos: cur.pos() - 1, Kind: kind, Open: true})
				cur.prev, cur.has = tok, true

			case "]":
				kind := lineinfo.Bracket
				if n := len(f.bracketKindStack); n > 0 {
					kind = f.bracketKindStack[n-1]
					f.bracketKindStack = f.bracketKindStack[:n-1]
				} else {
					f.assertf("stray ']' with no matching open bracket")
				}
				cur.put("]", false)
				cur.parens = append(cur.parens, lineinfo.ParenEvent{Pos: cur.pos() - 1, Kind: kind, Open: false})
				cur.prev, cur.has = tok, true

			case ";":
				cur.put(";", false)
				cur.prev, cur.has = tok, true
				// A `;` nested inside a header's own parens (a for-loop's
				// "init; cond; post") is not a statement boundary — it
				// must not clear the header that owns those parens, or
				// the loop's own opening brace would misclassify with a
				// nil header once it finally arrives.
				if f.parenDepth == 0 {
					if f.stmtHeader != nil {
						cur.headerCloses++
					}
					f.stmtHeader = nil
					f.sawAssign = false
				}

			case ",":
				cur.put(",", false)
				cur.prev, cur.has = tok, true

			case ":":
				kind, isCase, isDefault := classifyColon(f, cur, toks, i)
				cur.colon = kind
				cur.colonPos = cur.pos()
				cur.isCase = isCase
				cur.isDefault = isDefault
				cur.put(":", kind == lineinfo.ColonTernary && f.cfg.PadOperators)
				cur.prev, cur.has = tok, true

			case "?":
				cur.put("?", f.cfg.PadOperators)
				cur.prev, cur.has = tok, true
			}

		case TOp:
			inRun := ptrRunIdx < len(ptrRuns) && i >= ptrRuns[ptrRunIdx].start && i < ptrRuns[ptrRunIdx].end
			if inRun {
				run := ptrRuns[ptrRunIdx]
				isFirst := ptrRunIdx == 0
				before, after := spaceAroundPointerRun(f.cfg.PointerAlignment, isFirst)
				if tok.Text == "&" {
					before, after = spaceAroundPointerRun(f.cfg.ReferenceAlignment, isFirst)
				}
				precededByComma := cur.has && cur.prev.Kind == TPunct && cur.prev.Text == ","
				spaceBefore := i == run.start && (before || precededByComma)
				cur.put(tok.Text, spaceBefore)
				if i == run.end-1 {
					want := after
					cur.forceSpaceBefore = &want
					ptrRunIdx++
				}
			} else {
				if isAssignmentOp(tok, f.tab) && f.parenDepth == 0 {
					f.sawAssign = true
				}
				cur.put(tok.Text, opNeedsSpace(cur.prev, cur.has, tok, f.cfg))
			}
			cur.prev, cur.has = tok, true
		}
	}

	if !cur.empty() || len(out) == 0 {
		out = append(out, cur.finish())
	}
	_ = raw
	return out
}

// spaceBetween decides whether a space belongs before a word/string/char/
// number token given what precedes it. An operator that isn't one of the
// always-tight cases (§4.1's PadOperators exceptions) only pads its far
// side when PadOperators is on, mirroring opNeedsSpace's near-side rule —
// otherwise a bare `int **q` declarator run would get a stray space
// pushed in front of its name under the default no-padding styles.
func spaceBetween(cur *lineBuilder, tok Token, cfg style.Config) bool {
	if cur.empty() {
		return false
	}
	prev := cur.prev
	switch prev.Kind {
	case TPunct:
		switch prev.Text {
		case "(", "[":
			return false
		case "{", ")", "]":
			return true
		default:
			return true
		}
	case TOp:
		if isTightBindingOp(prev.Text) {
			return false
		}
		return cfg.PadOperators
	default:
		return true
	}
}

// isTightBindingOp reports whether tok always binds to its neighbors
// with no surrounding space, regardless of PadOperators — member access
// and unary/increment operators (§4.1's operator padding rule).
func isTightBindingOp(text string) bool {
	switch text {
	case "::", ".", "->", "++", "--", "!", "~":
		return true
	}
	return false
}

// opNeedsSpace decides padding around a general (non pointer/reference)
// operator token (§4.1's PadOperators rule), with the usual `::`, unary
// `!`/`~`, and `++`/`--` exceptions that stay tight against their
// operand regardless of PadOperators. A preceding comma always forces a
// space, the same as it would before a word/string/number token via
// spaceBetween, so the `-` in `f(a, -b)` isn't left glued to the comma.
// (Pointer/reference declarator runs never reach here; their spacing is
// decided by spaceAroundPointerRun.)
func opNeedsSpace(prev Token, havePrev bool, tok Token, cfg style.Config) bool {
	if !havePrev {
		return false
	}
	if prev.Kind == TPunct && prev.Text == "," {
		return true
	}
	if isTightBindingOp(tok.Text) {
		return false
	}
	return cfg.PadOperators
}

// isCuddleHeader reports whether h names one of the closing headers a
// preceding `}` cuddles against under an attach-family brace style
// (§4.1.3): else, catch, finally, and a trailing do/while's while.
func isCuddleHeader(h *langtable.Header) bool {
	if h == nil {
		return false
	}
	switch h.Name {
	case "else", "catch", "finally", "while":
		return true
	}
	return false
}

func isAssignmentOp(tok Token, tab *langtable.Tables) bool {
	if tok.Kind != TOp {
		return false
	}
	for _, op := range tab.AssignmentOps {
		if op == tok.Text {
			return true
		}
	}
	return false
}

// lineHasMatchingClose reports whether the `{` at toks[openIdx] is closed
// by a `}` later in the same token slice, i.e. whether the brace's block
// is written as a one-line block in the source (§3, BraceType SINGLE_LINE
// modifier).
func lineHasMatchingClose(toks []Token, openIdx int) bool {
	depth := 0
	for i := openIdx; i < len(toks); i++ {
		if toks[i].Kind != TPunct {
			continue
		}
		switch toks[i].Text {
		case "{":
			depth++
		case "}":
			depth--
			if depth == 0 {
				return true
			}
		}
	}
	return false
}

// isLastSignificant reports whether toks[idx] is the last token in the
// slice, i.e. an opening paren with nothing following it on the physical
// line — the trigger condition for the continuation-indent algorithm's
// "paren is last on line" branch (§4.2.2 step 2).
func isLastSignificant(toks []Token, idx int) bool {
	return idx == len(toks)-1
}

// classifyColon disambiguates a `:` token using only local context: the
// statement's current header (case/default, class/struct base list),
// paren depth (a `:` inside parens is never a label, e.g. a ternary
// nested in a call), and whether the line so far is a single bare
// identifier (a goto label). This mirrors the decision spec.md §4.1 step
// 11 assigns to the Formatter, simplified to the cases the Beautifier
// actually branches on (§4.2.4).
func classifyColon(f *Formatter, cur *lineBuilder, toks []Token, idx int) (kind lineinfo.ColonKind, isCase, isDefault bool) {
	if f.stmtHeader != nil {
		switch f.stmtHeader.Name {
		case "case":
			return lineinfo.ColonCaseOrDefault, true, false
		case "default":
			return lineinfo.ColonCaseOrDefault, false, true
		case "class", "struct", "interface":
			if f.parenDepth == 0 {
				return lineinfo.ColonClassHeaderBase, false, false
			}
		}
	}
	if f.parenDepth > 0 {
		return lineinfo.ColonTernary, false, false
	}
	// A bare `identifier :` at the start of a statement, with nothing
	// else accumulated yet and no more tokens after the colon on this
	// line, is a goto label or an access modifier (public:/private:).
	if idx == len(toks)-1 && cur.empty() == false {
		trimmed := strings.TrimSpace(cur.sb.String())
		if isSingleIdentifier(trimmed) {
			switch trimmed {
			case "public", "private", "protected":
				return lineinfo.ColonAccessModifier, false, false
			default:
				return lineinfo.ColonLabel, false, false
			}
		}
	}
	return lineinfo.ColonTernary, false, false
}

func isSingleIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !langtable.IsLegalNameChar(r) {
			return false
		}
	}
	return true
}
