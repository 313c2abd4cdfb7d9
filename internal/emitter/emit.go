package emitter

// The per-event emission state machine. Every token is written in three
// steps: the separator the current state requires, the token bytes, and
// the state transition.

// emitValueSeparator writes whatever must precede a value in the
// current state.
func emitValueSeparator(e *Emitter) error {
	switch e.state {
	case emitAfterValueState:
		err := e.put(',')
		if err != nil {
			return err
		}
		if e.indented() {
			return writeIndent(e)
		}
	case emitOpenedState:
		if e.indented() {
			return writeIndent(e)
		}
	case emitInitialState, emitAfterKeyState:
		// The document start needs nothing; a key has already written
		// its colon.
	}
	return nil
}

func emitContainerStart(e *Emitter, open byte) error {
	err := emitValueSeparator(e)
	if err != nil {
		return err
	}
	err = e.put(open)
	if err != nil {
		return err
	}
	e.depth++
	e.state = emitOpenedState
	return nil
}

func emitContainerEnd(e *Emitter, close byte) error {
	wasEmpty := e.state == emitOpenedState
	e.depth--
	if !wasEmpty && e.indented() {
		err := writeIndent(e)
		if err != nil {
			return err
		}
	}
	err := e.put(close)
	if err != nil {
		return err
	}
	e.state = emitAfterValueState
	return nil
}

func emitKey(e *Emitter, name string) error {
	if e.state == emitAfterValueState {
		err := e.put(',')
		if err != nil {
			return err
		}
	}
	if e.indented() {
		err := writeIndent(e)
		if err != nil {
			return err
		}
	}
	err := writeScalar(e, name)
	if err != nil {
		return err
	}
	err = e.put(':')
	if err != nil {
		return err
	}
	if e.indented() {
		err = e.put(' ')
		if err != nil {
			return err
		}
	}
	e.state = emitAfterKeyState
	return nil
}

func emitScalar(e *Emitter, write func() error) error {
	err := emitValueSeparator(e)
	if err != nil {
		return err
	}
	err = write()
	if err != nil {
		return err
	}
	e.state = emitAfterValueState
	return nil
}
