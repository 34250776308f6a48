package langtable

func buildCTables() *Tables {
	headers := []*Header{
		hIf, hElse, hFor, hForEach, hForever, hWhile, hDo, hSwitch, hCase, hDefault,
		hTry, hCatch, hFinally, hExcept,
		hClass, hStruct, hUnion, hNamespace, hInterface, hEnum, hExtern, hTemplate,
		hStatic, hUsing,
	}

	nonParen := newHeaderSet(hElse, hDo, hTry, hFinally, hStruct, hUnion, hEnum, hClass, hNamespace, hInterface, hExtern)

	preBlock := newHeaderSet(hClass, hStruct, hUnion, hNamespace, hInterface, hExtern, hEnum)

	preCommand := newHeaderSet(hIf, hElse, hFor, hForEach, hForever, hWhile, hDo, hSwitch, hTry, hCatch, hFinally, hExcept, hUsing)

	closing := map[*Header]*Header{
		hElse:    hIf,
		hCatch:   hTry,
		hFinally: hTry,
		hExcept:  hTry,
		hWhile:   hDo, // only when pairing a trailing do-while; Beautifier decides applicability
	}

	probation := newHeaderSet(hStatic)

	return &Tables{
		FileType:             C,
		Headers:              headers,
		NonParenHeaders:      nonParen,
		PreBlockStatements:   preBlock,
		PreCommandHeaders:    preCommand,
		PreDefinitionHeaders: newHeaderSet(hNamespace, hClass, hStruct, hInterface, hModule),
		ClosingHeaders:       closing,
		ProbationHeaders:     probation,
		AssignmentOps:        sortedByLengthDesc(baseAssignmentOps),
		NonAssignmentOps:     sortedByLengthDesc(baseNonAssignmentOps),
		CastOps:              castOps,
		IndentableMacros:     map[string]bool{"#if": true, "#ifdef": true, "#ifndef": true},
	}
}
