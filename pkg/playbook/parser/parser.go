package parser

import (
	"fmt"
	"os"
	"strings"

	"playlint-hq/playlint/pkg/playbook/ast"
	pberrors "playlint-hq/playlint/pkg/playbook/errors"
)

// Parser parses playbook files into lossless document trees.
type Parser struct {
	maxFileSize int64 // Maximum file size in bytes (default: 10MB)
}

// NewParser creates a new parser with default configuration.
func NewParser() *Parser {
	return &Parser{
		maxFileSize: 10 * 1024 * 1024, // 10MB
	}
}

// WithMaxFileSize sets the maximum file size limit.
func (p *Parser) WithMaxFileSize(size int64) *Parser {
	p.maxFileSize = size
	return p
}

// Parse parses the playbook file at the given path. It returns a
// *errors.ParseError if the file cannot be read or contains a YAML syntax
// fault (unbalanced quotes, tabs in indentation, bad dedent).
func (p *Parser) Parse(path string) (*ast.Document, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return nil, pberrors.NewIOError(fmt.Sprintf("failed to access file: %v", err), path)
	}
	if fileInfo.Size() > p.maxFileSize {
		return nil, pberrors.NewIOError(
			fmt.Sprintf("file size %d exceeds maximum %d bytes", fileInfo.Size(), p.maxFileSize), path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pberrors.NewIOError(fmt.Sprintf("failed to read file: %v", err), path)
	}

	return p.ParseBytes(data, path)
}

// ParseBytes parses playbook YAML from a byte slice. This is useful for
// testing or linting in-memory content.
func (p *Parser) ParseBytes(data []byte, sourcePath string) (*ast.Document, error) {
	if int64(len(data)) > p.maxFileSize {
		return nil, pberrors.NewIOError(
			fmt.Sprintf("data size %d exceeds maximum %d bytes", len(data), p.maxFileSize), sourcePath)
	}

	scanned, err := scan(string(data), sourcePath)
	if err != nil {
		return nil, err
	}

	b := &builder{path: sourcePath, lines: scanned.lines}
	doc, err := b.buildDocument()
	if err != nil {
		return nil, err
	}

	doc.Path = sourcePath
	doc.TrailingNewlines = scanned.trailingNewlines
	doc.Lines = scanned.rawLines
	return doc, nil
}

// builder turns scanned lines into the document tree. It keeps a single
// cursor over the line list; parse functions only ever move it forward.
type builder struct {
	path  string
	lines []scanLine
	pos   int
}

func (b *builder) syntaxErr(line, col int, format string, args ...any) *pberrors.ParseError {
	return pberrors.NewSyntaxError(
		fmt.Sprintf(format, args...),
		ast.Location{File: b.path, Line: line, Column: col},
	)
}

// nextContent returns the next content line at or after the cursor without
// consuming anything. A document-end marker terminates the stream.
func (b *builder) nextContent() (int, scanLine, bool) {
	for i := b.pos; i < len(b.lines); i++ {
		switch b.lines[i].kind {
		case lineBlank, lineComment:
			continue
		case lineDocEnd:
			return 0, scanLine{}, false
		default:
			return i, b.lines[i], true
		}
	}
	return 0, scanLine{}, false
}

// consumeTrivia advances the cursor to idx, collecting blank-line counts
// and comment nodes along the way.
func (b *builder) consumeTrivia(idx int) (int, []*ast.Comment) {
	blanks := 0
	var comments []*ast.Comment
	for ; b.pos < idx; b.pos++ {
		ln := b.lines[b.pos]
		switch ln.kind {
		case lineBlank:
			blanks++
		case lineComment:
			comments = append(comments, commentNode(ln))
		}
	}
	return blanks, comments
}

func commentNode(ln scanLine) *ast.Comment {
	text := strings.TrimRight(ln.text[ln.indent:], " ")
	return &ast.Comment{
		Text: text,
		SourceSpan: ast.Span{
			Start: ast.Position{Line: ln.num, Column: ln.indent + 1},
			End:   ast.Position{Line: ln.num, Column: ln.indent + len(text) + 1},
		},
	}
}

func isDashLine(ln scanLine) bool {
	rest := ln.text[ln.indent:]
	return rest == "-" || strings.HasPrefix(rest, "- ")
}

// buildDocument parses the full line stream: header comments, the "---"
// marker, the root node, and trailing trivia.
func (b *builder) buildDocument() (*ast.Document, error) {
	doc := &ast.Document{}

	// Header: comments and blanks before the document-start marker or the
	// first content line.
	blanksSinceComment := 0
header:
	for b.pos < len(b.lines) {
		ln := b.lines[b.pos]
		switch ln.kind {
		case lineComment:
			doc.HeaderComments = append(doc.HeaderComments, commentNode(ln))
			blanksSinceComment = 0
			b.pos++
		case lineBlank:
			blanksSinceComment++
			b.pos++
		case lineDocStart:
			doc.HasDocStart = true
			doc.DocStart = ast.Position{Line: ln.num, Column: 1}
			doc.BlankAfterHeader = blanksSinceComment
			b.pos++
			break header
		default:
			break header
		}
	}

	if doc.HasDocStart {
		for b.pos < len(b.lines) && b.lines[b.pos].kind == lineBlank {
			doc.BlankAfterDocStart++
			b.pos++
		}
	}

	if _, _, ok := b.nextContent(); ok {
		root, err := b.parseNode()
		if err != nil {
			return nil, err
		}
		doc.Root = root
	}

	// Anything left must be trivia. A stray content line here means the
	// parse loops above stopped on an indentation fault.
	for b.pos < len(b.lines) {
		ln := b.lines[b.pos]
		switch ln.kind {
		case lineBlank, lineComment, lineDocEnd:
			doc.TrailingLines = append(doc.TrailingLines, ln.text)
			b.pos++
		default:
			return nil, b.syntaxErr(ln.num, ln.indent+1, "unexpected content after document root")
		}
	}

	return doc, nil
}

// parseNode dispatches on the shape of the next content line: sequence,
// mapping, or standalone scalar.
func (b *builder) parseNode() (ast.Node, error) {
	_, line, ok := b.nextContent()
	if !ok {
		return nil, nil
	}

	switch {
	case isDashLine(line):
		return b.parseSequence(line.indent)
	case b.entryColon(line) >= 0:
		return b.parseMapping(line.indent)
	default:
		idx, _, _ := b.nextContent()
		blanks, comments := b.consumeTrivia(idx)
		b.pos++
		scalar, trailing, err := b.lexInlineScalar(line, line.indent)
		if err != nil {
			return nil, err
		}
		scalar.BlankLinesBefore = blanks
		scalar.LeadingComments = comments
		scalar.TrailingComment = trailing
		if scalar.Style == ast.StylePlain {
			b.consumeContinuations(scalar, line.indent)
		}
		return scalar, nil
	}
}

// parseSequence parses consecutive "- item" lines at the given indent.
func (b *builder) parseSequence(indent int) (*ast.Sequence, error) {
	seq := &ast.Sequence{}

	for {
		idx, line, ok := b.nextContent()
		if !ok || line.indent < indent {
			break
		}
		if line.indent > indent {
			return nil, b.syntaxErr(line.num, line.indent+1, "unexpected indentation")
		}
		if !isDashLine(line) {
			break
		}

		blanks, comments := b.consumeTrivia(idx)
		b.pos++ // consume the dash line

		item := &ast.SequenceItem{
			Dash:             ast.Position{Line: line.num, Column: indent + 1},
			BlankLinesBefore: blanks,
			LeadingComments:  comments,
		}

		if err := b.parseSequenceItemValue(item, line, indent); err != nil {
			return nil, err
		}
		seq.Items = append(seq.Items, item)
	}

	if len(seq.Items) > 0 {
		seq.SourceSpan = ast.Span{
			Start: ast.Position{Line: seq.Items[0].Dash.Line, Column: indent + 1},
			End:   nodeEnd(seq.Items[len(seq.Items)-1].Node, seq.Items[len(seq.Items)-1].Dash),
		}
	}
	return seq, nil
}

// parseSequenceItemValue parses the value of a "- ..." line whose dash has
// already been consumed, filling item.Node.
func (b *builder) parseSequenceItemValue(item *ast.SequenceItem, line scanLine, dashIndent int) error {
	rest := line.text[dashIndent+1:]

	if strings.TrimSpace(rest) == "" {
		// Bare dash: value is a nested block on the following lines.
		node, err := b.parseNestedValue(dashIndent, line)
		item.Node = node
		return err
	}

	spaces := 0
	for spaces < len(rest) && rest[spaces] == ' ' {
		spaces++
	}
	valStart := dashIndent + 1 + spaces

	if rest[spaces] == '#' {
		// Dash followed only by a comment.
		item.TrailingComment = inlineComment(rest[spaces:], line.num, valStart)
		node, err := b.parseNestedValue(dashIndent, line)
		item.Node = node
		return err
	}

	if b.entryColonAt(line, valStart) >= 0 {
		// Mapping whose first entry shares the dash line. Subsequent
		// entries sit at the column of the first key.
		node, err := b.parseMappingFrom(line, valStart)
		item.Node = node
		return err
	}

	scalar, trailing, err := b.lexInlineScalar(line, valStart)
	if err != nil {
		return err
	}
	if scalar.Style == ast.StylePlain {
		b.consumeContinuations(scalar, dashIndent)
	}
	item.Node = scalar
	item.TrailingComment = trailing
	return nil
}

// parseNestedValue parses a block value that starts on the line after its
// owner (a bare dash or a "key:" with no inline value).
func (b *builder) parseNestedValue(ownerIndent int, ownerLine scanLine) (ast.Node, error) {
	_, next, ok := b.nextContent()
	if !ok {
		return nil, nil
	}
	if next.indent > ownerIndent {
		return b.parseNode()
	}
	if next.indent == ownerIndent && isDashLine(next) && !isDashLine(ownerLine) {
		// Zero-indented sequence under a mapping key. Valid YAML; the
		// spacing rule reports the indentation, not the parser.
		return b.parseSequence(next.indent)
	}
	return nil, nil
}

// parseMapping parses consecutive "key: value" lines at the given indent.
func (b *builder) parseMapping(indent int) (*ast.Mapping, error) {
	m := &ast.Mapping{}

	for {
		idx, line, ok := b.nextContent()
		if !ok || line.indent < indent {
			break
		}
		if line.indent > indent {
			return nil, b.syntaxErr(line.num, line.indent+1, "unexpected indentation")
		}
		if isDashLine(line) {
			return nil, b.syntaxErr(line.num, line.indent+1, "unexpected sequence entry in mapping")
		}

		blanks, comments := b.consumeTrivia(idx)
		b.pos++ // consume the entry line

		entry, err := b.parseEntry(line, indent)
		if err != nil {
			return nil, err
		}
		entry.Index = len(m.Entries)
		entry.BlankLinesBefore = blanks
		entry.LeadingComments = comments
		m.Entries = append(m.Entries, entry)
	}

	if len(m.Entries) > 0 {
		m.SourceSpan = ast.Span{
			Start: m.Entries[0].Key.SourceSpan.Start,
			End:   m.Entries[len(m.Entries)-1].SourceSpan.End,
		}
	}
	return m, nil
}

// parseMappingFrom parses a mapping whose first entry begins mid-line at
// keyCol (a mapping inside a sequence item). Subsequent entries sit on
// their own lines at indent keyCol.
func (b *builder) parseMappingFrom(line scanLine, keyCol int) (*ast.Mapping, error) {
	m := &ast.Mapping{}

	first, err := b.parseEntry(line, keyCol)
	if err != nil {
		return nil, err
	}
	first.Index = 0
	m.Entries = append(m.Entries, first)

	for {
		idx, next, ok := b.nextContent()
		if !ok || next.indent < keyCol {
			break
		}
		if next.indent > keyCol {
			return nil, b.syntaxErr(next.num, next.indent+1, "unexpected indentation")
		}
		if isDashLine(next) {
			break
		}

		blanks, comments := b.consumeTrivia(idx)
		b.pos++

		entry, err := b.parseEntry(next, keyCol)
		if err != nil {
			return nil, err
		}
		entry.Index = len(m.Entries)
		entry.BlankLinesBefore = blanks
		entry.LeadingComments = comments
		m.Entries = append(m.Entries, entry)
	}

	m.SourceSpan = ast.Span{
		Start: m.Entries[0].Key.SourceSpan.Start,
		End:   m.Entries[len(m.Entries)-1].SourceSpan.End,
	}
	return m, nil
}

// parseEntry parses a single "key: value" pair starting at keyCol on the
// given (already consumed) line.
func (b *builder) parseEntry(line scanLine, keyCol int) (*ast.MappingEntry, error) {
	colonIdx := b.entryColonAt(line, keyCol)
	if colonIdx < 0 {
		return nil, b.syntaxErr(line.num, keyCol+1, "expected ':' in mapping entry")
	}

	keyText := line.text[keyCol:colonIdx]
	trimmedKey := strings.TrimRight(keyText, " ")
	spacesBefore := len(keyText) - len(trimmedKey)

	key, err := b.lexKeyScalar(trimmedKey, line.num, keyCol)
	if err != nil {
		return nil, err
	}

	entry := &ast.MappingEntry{
		Key:               key,
		SpacesBeforeColon: spacesBefore,
		SpacesAfterColon:  -1,
	}

	rest := line.text[colonIdx+1:]
	spacesAfter := 0
	for spacesAfter < len(rest) && rest[spacesAfter] == ' ' {
		spacesAfter++
	}
	valText := rest[spacesAfter:]
	valStart := colonIdx + 1 + spacesAfter

	switch {
	case valText == "":
		value, err := b.parseNestedValue(keyCol, line)
		if err != nil {
			return nil, err
		}
		entry.Value = value

	case valText[0] == '#':
		entry.TrailingComment = inlineComment(valText, line.num, valStart)
		value, err := b.parseNestedValue(keyCol, line)
		if err != nil {
			return nil, err
		}
		entry.Value = value

	case valText[0] == '|' || valText[0] == '>':
		entry.SpacesAfterColon = spacesAfter
		scalar, trailing, err := b.parseBlockScalar(line, valStart, keyCol)
		if err != nil {
			return nil, err
		}
		entry.Value = scalar
		entry.TrailingComment = trailing

	default:
		entry.SpacesAfterColon = spacesAfter
		scalar, trailing, err := b.lexInlineScalar(line, valStart)
		if err != nil {
			return nil, err
		}
		if scalar.Style == ast.StylePlain {
			b.consumeContinuations(scalar, keyCol)
		}
		entry.Value = scalar
		entry.TrailingComment = trailing
	}

	entry.SourceSpan = ast.Span{
		Start: key.SourceSpan.Start,
		End:   nodeEnd(entry.Value, ast.Position{Line: line.num, Column: colonIdx + 2}),
	}
	return entry, nil
}

// parseBlockScalar parses a literal ("|") or folded (">") block scalar whose
// indicator sits at valStart on the given line.
func (b *builder) parseBlockScalar(line scanLine, valStart, ownerIndent int) (*ast.Scalar, *ast.Comment, error) {
	header := line.text[valStart:]

	style := ast.StyleLiteral
	if header[0] == '>' {
		style = ast.StyleFolded
	}

	raw := header
	var trailing *ast.Comment
	if i := strings.Index(header, " #"); i >= 0 {
		raw = strings.TrimRight(header[:i], " ")
		trailing = inlineComment(strings.TrimLeft(header[i:], " "), line.num, valStart+i+countLeadingSpaces(header[i:]))
	}

	chomp := ""
	for _, c := range raw[1:] {
		switch {
		case c == '-' || c == '+':
			chomp = string(c)
		case c >= '1' && c <= '9':
			// explicit indentation indicator, kept in Raw
		default:
			return nil, nil, b.syntaxErr(line.num, valStart+1, "invalid block scalar header %q", raw)
		}
	}

	// Collect the block body: lines more indented than the owner, plus
	// interior blanks. Blanks that precede a dedent belong to the parent.
	var body []string
	end := b.pos
	lastContent := b.pos - 1
	for i := b.pos; i < len(b.lines); i++ {
		ln := b.lines[i]
		if ln.kind == lineBlank {
			continue
		}
		if ln.indent <= ownerIndent {
			break
		}
		lastContent = i
	}
	for i := b.pos; i <= lastContent; i++ {
		body = append(body, b.lines[i].text)
		end = i + 1
	}
	b.pos = end

	scalar := &ast.Scalar{
		Raw:            raw,
		Style:          style,
		BlockLines:     body,
		ChompIndicator: chomp,
		SourceSpan: ast.Span{
			Start: ast.Position{Line: line.num, Column: valStart + 1},
			End:   blockEnd(line, valStart, raw, b.lines, lastContent),
		},
	}
	scalar.Value = decodeBlock(style, body)
	return scalar, trailing, nil
}

func blockEnd(header scanLine, valStart int, raw string, lines []scanLine, lastContent int) ast.Position {
	if lastContent >= 0 && lastContent < len(lines) && lines[lastContent].num > header.num {
		last := lines[lastContent]
		return ast.Position{Line: last.num, Column: len(last.text) + 1}
	}
	return ast.Position{Line: header.num, Column: valStart + len(raw) + 1}
}

// decodeBlock joins block scalar body lines per style: literal preserves
// newlines, folded joins with spaces. Chomping detail is not reproduced;
// rules only inspect style and raw form.
func decodeBlock(style ast.ScalarStyle, body []string) string {
	if len(body) == 0 {
		return ""
	}

	base := -1
	for _, ln := range body {
		if strings.TrimSpace(ln) == "" {
			continue
		}
		indent := countLeadingSpaces(ln)
		if base < 0 || indent < base {
			base = indent
		}
	}

	parts := make([]string, len(body))
	for i, ln := range body {
		if len(ln) >= base && base >= 0 {
			parts[i] = ln[base:]
		} else {
			parts[i] = strings.TrimLeft(ln, " ")
		}
	}

	if style == ast.StyleLiteral {
		return strings.Join(parts, "\n")
	}
	return strings.Join(parts, " ")
}

// consumeContinuations folds more-indented plain-scalar continuation lines
// into the scalar. Continuations keep their raw lines for re-encoding.
func (b *builder) consumeContinuations(scalar *ast.Scalar, ownerIndent int) {
	for b.pos < len(b.lines) {
		ln := b.lines[b.pos]
		if ln.kind != lineContent || ln.indent <= ownerIndent {
			return
		}
		scalar.BlockLines = append(scalar.BlockLines, ln.text)
		scalar.Value += " " + strings.TrimSpace(ln.text)
		scalar.SourceSpan.End = ast.Position{Line: ln.num, Column: len(ln.text) + 1}
		b.pos++
	}
}

func countLeadingSpaces(s string) int {
	n := 0
	for n < len(s) && s[n] == ' ' {
		n++
	}
	return n
}

func inlineComment(text string, lineNum, startIdx int) *ast.Comment {
	text = strings.TrimRight(text, " ")
	return &ast.Comment{
		Text: text,
		SourceSpan: ast.Span{
			Start: ast.Position{Line: lineNum, Column: startIdx + 1},
			End:   ast.Position{Line: lineNum, Column: startIdx + len(text) + 1},
		},
	}
}

func nodeEnd(n ast.Node, fallback ast.Position) ast.Position {
	if n == nil {
		return fallback
	}
	return n.Span().End
}

// entryColon returns the index of the key/value separator on a line, or -1.
func (b *builder) entryColon(line scanLine) int {
	return b.entryColonAt(line, line.indent)
}

// entryColonAt scans from fromIdx for a ':' outside quotes and flow
// brackets. A colon followed by a space or end of line is preferred; a bare
// "key:value" colon is accepted so the colon-spacing rule can report it
// rather than the parser rejecting the file.
func (b *builder) entryColonAt(line scanLine, fromIdx int) int {
	strict, loose := -1, -1

	inSingle, inDouble := false, false
	depth := 0
	text := line.text
	for i := fromIdx; i < len(text); i++ {
		c := text[i]
		switch {
		case inSingle:
			if c == '\'' {
				inSingle = false
			}
		case inDouble:
			if c == '\\' {
				i++
			} else if c == '"' {
				inDouble = false
			}
		case c == '\'':
			inSingle = true
		case c == '"':
			inDouble = true
		case c == '[' || c == '{':
			depth++
		case c == ']' || c == '}':
			depth--
		case c == '#' && i > fromIdx && text[i-1] == ' ' && depth == 0:
			// comment terminates the scan
			i = len(text)
		case c == ':' && depth == 0:
			if i+1 >= len(text) || text[i+1] == ' ' {
				if strict < 0 {
					strict = i
				}
			} else if loose < 0 {
				loose = i
			}
		}
		if strict >= 0 {
			break
		}
	}

	if strict >= 0 {
		return strict
	}
	return loose
}

// lexKeyScalar lexes a mapping key, which may itself be quoted.
func (b *builder) lexKeyScalar(raw string, lineNum, keyCol int) (*ast.Scalar, error) {
	style := ast.StylePlain
	value := raw

	switch {
	case len(raw) >= 2 && raw[0] == '\'' && raw[len(raw)-1] == '\'':
		style = ast.StyleSingleQuoted
		value = strings.ReplaceAll(raw[1:len(raw)-1], "''", "'")
	case len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"':
		style = ast.StyleDoubleQuoted
		value = decodeDoubleQuoted(raw[1 : len(raw)-1])
	case len(raw) >= 1 && (raw[0] == '\'' || raw[0] == '"'):
		return nil, b.syntaxErr(lineNum, keyCol+1, "unclosed %c quote in mapping key", raw[0])
	}

	return &ast.Scalar{
		Value: value,
		Raw:   raw,
		Style: style,
		SourceSpan: ast.Span{
			Start: ast.Position{Line: lineNum, Column: keyCol + 1},
			End:   ast.Position{Line: lineNum, Column: keyCol + len(raw) + 1},
		},
	}, nil
}

// lexInlineScalar lexes an inline scalar value starting at startIdx on the
// given line, returning the scalar and any trailing comment.
func (b *builder) lexInlineScalar(line scanLine, startIdx int) (*ast.Scalar, *ast.Comment, error) {
	text := line.text
	c := text[startIdx]

	switch c {
	case '\'':
		end := -1
		for i := startIdx + 1; i < len(text); i++ {
			if text[i] == '\'' {
				if i+1 < len(text) && text[i+1] == '\'' {
					i++ // escaped quote
					continue
				}
				end = i
				break
			}
		}
		if end < 0 {
			return nil, nil, b.syntaxErr(line.num, startIdx+1, "unclosed single quote")
		}
		raw := text[startIdx : end+1]
		trailing, err := b.afterScalar(line, end+1)
		if err != nil {
			return nil, nil, err
		}
		return b.scalarNode(raw, ast.StyleSingleQuoted,
			strings.ReplaceAll(raw[1:len(raw)-1], "''", "'"), line.num, startIdx), trailing, nil

	case '"':
		end := -1
		for i := startIdx + 1; i < len(text); i++ {
			if text[i] == '\\' {
				i++
				continue
			}
			if text[i] == '"' {
				end = i
				break
			}
		}
		if end < 0 {
			return nil, nil, b.syntaxErr(line.num, startIdx+1, "unclosed double quote")
		}
		raw := text[startIdx : end+1]
		trailing, err := b.afterScalar(line, end+1)
		if err != nil {
			return nil, nil, err
		}
		return b.scalarNode(raw, ast.StyleDoubleQuoted,
			decodeDoubleQuoted(raw[1:len(raw)-1]), line.num, startIdx), trailing, nil

	case '[', '{':
		// Flow collections are lexed as raw plain scalars, not decomposed.
		// They must close on the same line.
		end := flowEnd(text, startIdx)
		if end < 0 {
			return nil, nil, b.syntaxErr(line.num, startIdx+1, "unterminated flow collection")
		}
		raw := text[startIdx : end+1]
		trailing, err := b.afterScalar(line, end+1)
		if err != nil {
			return nil, nil, err
		}
		return b.scalarNode(raw, ast.StyleFlow, raw, line.num, startIdx), trailing, nil

	default:
		end := len(text)
		var trailing *ast.Comment
		for i := startIdx + 1; i < len(text); i++ {
			if text[i] == '#' && text[i-1] == ' ' {
				end = i
				break
			}
		}
		raw := strings.TrimRight(text[startIdx:end], " ")
		if end < len(text) {
			trailing = inlineComment(text[end:], line.num, end)
		}
		return b.scalarNode(raw, ast.StylePlain, raw, line.num, startIdx), trailing, nil
	}
}

// afterScalar validates the remainder of a line after a closed quote or
// flow collection: only spaces and a trailing comment are allowed.
func (b *builder) afterScalar(line scanLine, fromIdx int) (*ast.Comment, error) {
	text := line.text
	i := fromIdx
	for i < len(text) && text[i] == ' ' {
		i++
	}
	if i >= len(text) {
		return nil, nil
	}
	if text[i] == '#' {
		return inlineComment(text[i:], line.num, i), nil
	}
	return nil, b.syntaxErr(line.num, i+1, "unexpected content after scalar value")
}

func (b *builder) scalarNode(raw string, style ast.ScalarStyle, value string, lineNum, startIdx int) *ast.Scalar {
	return &ast.Scalar{
		Value: value,
		Raw:   raw,
		Style: style,
		SourceSpan: ast.Span{
			Start: ast.Position{Line: lineNum, Column: startIdx + 1},
			End:   ast.Position{Line: lineNum, Column: startIdx + len(raw) + 1},
		},
	}
}

// flowEnd returns the index of the bracket closing the flow collection
// opened at startIdx, or -1 when it does not close on this line.
func flowEnd(text string, startIdx int) int {
	depth := 0
	inSingle, inDouble := false, false
	for i := startIdx; i < len(text); i++ {
		c := text[i]
		switch {
		case inSingle:
			if c == '\'' {
				inSingle = false
			}
		case inDouble:
			if c == '\\' {
				i++
			} else if c == '"' {
				inDouble = false
			}
		case c == '\'':
			inSingle = true
		case c == '"':
			inDouble = true
		case c == '[' || c == '{':
			depth++
		case c == ']' || c == '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func decodeDoubleQuoted(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			sb.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case '"', '\\':
			sb.WriteByte(s[i])
		default:
			sb.WriteByte('\\')
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}
