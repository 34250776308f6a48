package langtable

func buildJavaTables() *Tables {
	headers := []*Header{
		hIf, hElse, hFor, hForEach, hWhile, hDo, hSwitch, hCase, hDefault,
		hTry, hCatch, hFinally,
		hClass, hInterface, hEnum,
		hStatic, hSynchronized,
	}

	nonParen := newHeaderSet(hElse, hDo, hTry, hFinally, hClass, hInterface, hEnum)
	preBlock := newHeaderSet(hClass, hInterface, hEnum)
	preCommand := newHeaderSet(hIf, hElse, hFor, hForEach, hWhile, hDo, hSwitch, hTry, hCatch, hFinally, hSynchronized)

	closing := map[*Header]*Header{
		hElse:    hIf,
		hCatch:   hTry,
		hFinally: hTry,
	}

	probation := newHeaderSet(hStatic, hSynchronized)

	return &Tables{
		FileType:             Java,
		Headers:              headers,
		NonParenHeaders:      nonParen,
		PreBlockStatements:   preBlock,
		PreCommandHeaders:    preCommand,
		PreDefinitionHeaders: newHeaderSet(hClass, hInterface),
		ClosingHeaders:       closing,
		ProbationHeaders:     probation,
		AssignmentOps:        sortedByLengthDesc(baseAssignmentOps),
		NonAssignmentOps:     sortedByLengthDesc(baseNonAssignmentOps),
		CastOps:              nil, // Java has no cast-operator keywords; casts are plain parenthesized type names
		IndentableMacros:     map[string]bool{},
	}
}
