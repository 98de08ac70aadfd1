package argmatch

// Iterator parses a command line one matched definition at a time
//
//	it, err := parser.Iterator(args)
//	if err != nil {
//	    // handle configuration error
//	}
//	for d, value, ok := it.Next(); ok; d, value, ok = it.Next() {
//	    fmt.Println(d.DisplayName(), value)
//	}
//	if it.Err() != nil {
//	    // handle parse error
//	}
type Iterator struct {
	engine *engine
}

// Next returns the next matched argument or option and its value. It returns false once the
// command line is exhausted, a help or stop option has been returned or an error occurred.
// Unprocessed tokens are skipped.
func (it *Iterator) Next() (Definition, string, bool) {
	return it.engine.next()
}

// Err returns the parse error, if any
func (it *Iterator) Err() error {
	return it.engine.err
}

// Result returns the result of the parse. It is complete once Next has returned false.
func (it *Iterator) Result() *Result {
	return it.engine.result()
}
