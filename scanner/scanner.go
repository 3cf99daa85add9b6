package scanner

// Driver is the capability set a compiled automaton must provide to drive
// the scanner. Both the graph-walking *automaton.DFA and the table-indexed
// *automaton.StaticTable satisfy it; the table form is preferred at
// runtime.
type Driver interface {
	StartState() int
	ErrorState() int
	NextState(state int, c byte) int
	IsAcceptingState(state int) bool
	IsErrorState(state int) bool
	AcceptingToken(state int) int32
}

// LookaheadCapacity is the size of the token ring buffer backing the
// lookahead API.
const LookaheadCapacity = 64

// position tracks a byte offset with its 0-based line/column, plus the
// automaton state that was live when the position was recorded.
type position struct {
	offset int
	line   int
	column int
	state  int
}

// Scanner is the longest-match tokenizer. It borrows the input slice for
// the duration of the scan and allocates nothing per token beyond the
// token values themselves.
type Scanner struct {
	driver Driver

	path  string
	input []byte

	// firstAccepting marks the start of the current lexeme,
	// lastAccepting the position just past the longest match seen so
	// far; current is the read head.
	firstAccepting position
	lastAccepting  position
	current        position

	hasNextToken bool
	scanError    bool
	eofReturned  bool
	nextToken    Token

	ring ringBuffer
}

// New returns a scanner over the given driver. Call Initialize before
// scanning.
func New(driver Driver) *Scanner {
	return &Scanner{driver: driver}
}

// Initialize resets the scanner over a new input. The scanner keeps a
// reference to input and must not outlive it.
func (s *Scanner) Initialize(path string, input []byte) {
	s.path = path
	s.input = input

	s.firstAccepting = position{}
	s.lastAccepting = position{}
	s.current = position{}

	s.hasNextToken = false
	s.scanError = false
	s.eofReturned = false
	s.nextToken = Token{}
	s.ring = ringBuffer{}
}

// HasNext reports whether Next will produce another token. It returns
// false only once EOF has been reported or after a scan error token.
func (s *Scanner) HasNext() bool {
	if s.hasNextToken {
		return true
	}
	if s.scanError {
		return false
	}

	s.getNextToken()
	return s.hasNextToken || !s.eofReturned
}

// Next returns the next token. When the input is exhausted it yields a
// single EOF token pinned to the current position; calls past that point
// keep returning EOF tokens.
func (s *Scanner) Next() Token {
	if !s.HasNext() || !s.hasNextToken {
		s.eofReturned = true
		return Token{Type: TokenEOF, Range: s.acceptingRange()}
	}

	token := s.nextToken
	s.hasNextToken = false
	s.nextToken = Token{}
	return token
}

// getChar consumes one byte, advancing the line on '\n' and the column on
// everything else. CR is an ordinary byte.
func (s *Scanner) getChar() byte {
	c := s.input[s.current.offset]
	s.current.offset++
	if c == '\n' {
		s.current.line++
		s.current.column = 0
	} else {
		s.current.column++
	}
	return c
}

// getNextToken runs the automaton from the current position, tracking the
// last accepting state, and buffers either the longest match or an error
// token. Producing nothing means the input is exhausted.
func (s *Scanner) getNextToken() {
	state := s.driver.StartState()
	s.current.state = s.driver.ErrorState()
	s.lastAccepting = s.current
	s.firstAccepting = s.current

	// A start state that itself accepts permits an empty match, but any
	// longer match found below still wins.
	if s.driver.IsAcceptingState(state) {
		s.current.state = state
		s.firstAccepting = s.current
		s.lastAccepting = s.current
	}

	for !s.driver.IsErrorState(state) && s.current.offset < len(s.input) {
		c := s.getChar()
		state = s.driver.NextState(state, c)
		if s.driver.IsAcceptingState(state) {
			s.current.state = state
			s.lastAccepting = s.current
		}
	}

	if !s.driver.IsErrorState(s.lastAccepting.state) {
		token := Token{
			Type:   s.driver.AcceptingToken(s.lastAccepting.state),
			Lexeme: s.input[s.firstAccepting.offset:s.lastAccepting.offset],
			Range:  s.acceptingRange(),
		}

		// Resume right after the accepted lexeme; bytes consumed past
		// it while hunting for a longer match are handed back.
		s.current = s.lastAccepting
		s.hasNextToken = true
		s.nextToken = token
		return
	}

	// A scan that started before the end of the input but reached no
	// accepting state is a scan error; a scan started at the very end
	// is plain EOF.
	if s.driver.IsErrorState(s.current.state) && s.firstAccepting.offset < len(s.input) {
		s.hasNextToken = true
		s.scanError = true
		s.nextToken = Token{Type: TokenError, Range: s.acceptingRange()}
	}
}

func (s *Scanner) acceptingRange() FileRange {
	return FileRange{
		Path:  s.path,
		First: FilePosition{Line: s.firstAccepting.line, Column: s.firstAccepting.column},
		End:   FilePosition{Line: s.lastAccepting.line, Column: s.lastAccepting.column},
	}
}
