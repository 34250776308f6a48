package langtable

func buildSharpTables() *Tables {
	headers := []*Header{
		hIf, hElse, hFor, hForEach, hWhile, hDo, hSwitch, hCase, hDefault,
		hTry, hCatch, hFinally,
		hClass, hStruct, hNamespace, hInterface, hEnum,
		hStatic, hUsing, hDelegate, hUnchecked,
		hGet, hSet, hAdd, hRemove,
	}

	nonParen := newHeaderSet(hElse, hDo, hTry, hFinally, hClass, hStruct, hNamespace, hInterface, hEnum, hUnchecked, hGet, hSet, hAdd, hRemove)
	preBlock := newHeaderSet(hClass, hStruct, hNamespace, hInterface, hEnum)
	preCommand := newHeaderSet(hIf, hElse, hFor, hForEach, hWhile, hDo, hSwitch, hTry, hCatch, hFinally, hUsing, hUnchecked)

	closing := map[*Header]*Header{
		hElse:    hIf,
		hCatch:   hTry,
		hFinally: hTry,
	}

	probation := newHeaderSet(hStatic)

	return &Tables{
		FileType:             Sharp,
		Headers:              headers,
		NonParenHeaders:      nonParen,
		PreBlockStatements:   preBlock,
		PreCommandHeaders:    preCommand,
		PreDefinitionHeaders: newHeaderSet(hNamespace, hClass, hStruct, hInterface),
		ClosingHeaders:       closing,
		ProbationHeaders:     probation,
		AssignmentOps:        sortedByLengthDesc(baseAssignmentOps),
		NonAssignmentOps:     sortedByLengthDesc(baseNonAssignmentOps),
		CastOps:              nil,
		IndentableMacros:     map[string]bool{},
	}
}
