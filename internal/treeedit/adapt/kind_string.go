package adapt

var kindNames = map[NodeKind]string{
	KindInvalid:    "Invalid",
	KindFile:       "File",
	KindSyntaxList: "SyntaxList",

	KindItemFn:        "ItemFn",
	KindItemLet:       "ItemLet",
	KindItemConst:     "ItemConst",
	KindItemTypeAlias: "ItemTypeAlias",
	KindItemTypeStruct: "ItemTypeStruct",
	KindItemTypeUnion: "ItemTypeUnion",
	KindItemTag:       "ItemTag",
	KindItemExtern:    "ItemExtern",
	KindItemPragma:    "ItemPragma",
	KindItemImport:    "ItemImport",
	KindItemMacro:     "ItemMacro",
	KindItemContract:  "ItemContract",

	KindAttr:            "Attr",
	KindFnParam:         "FnParam",
	KindTypeStructField: "TypeStructField",
	KindTypeUnionMember: "TypeUnionMember",

	KindStmtBlock:      "StmtBlock",
	KindStmtLet:        "StmtLet",
	KindStmtConst:      "StmtConst",
	KindStmtExpr:       "StmtExpr",
	KindStmtReturn:     "StmtReturn",
	KindStmtBreak:      "StmtBreak",
	KindStmtContinue:   "StmtContinue",
	KindStmtIf:         "StmtIf",
	KindStmtWhile:      "StmtWhile",
	KindStmtForClassic: "StmtForClassic",
	KindStmtForIn:      "StmtForIn",
	KindStmtDrop:       "StmtDrop",
	KindStmtSignal:     "StmtSignal",

	KindExprIdent:      "ExprIdent",
	KindExprLit:        "ExprLit",
	KindExprCall:       "ExprCall",
	KindExprBinary:     "ExprBinary",
	KindExprUnary:      "ExprUnary",
	KindExprCast:       "ExprCast",
	KindExprGroup:      "ExprGroup",
	KindExprTuple:      "ExprTuple",
	KindExprArray:      "ExprArray",
	KindExprMap:        "ExprMap",
	KindExprIndex:      "ExprIndex",
	KindExprMember:     "ExprMember",
	KindExprTupleIndex: "ExprTupleIndex",
	KindExprTernary:    "ExprTernary",
	KindExprAwait:      "ExprAwait",
	KindExprTask:       "ExprTask",
	KindExprSpawn:      "ExprSpawn",
	KindExprParallel:   "ExprParallel",
	KindExprSpread:     "ExprSpread",
	KindExprCompare:    "ExprCompare",
	KindExprSelect:     "ExprSelect",
	KindExprRace:       "ExprRace",
	KindExprStruct:     "ExprStruct",
	KindExprAsync:      "ExprAsync",
	KindExprBlock:      "ExprBlock",
	KindExprRangeLit:   "ExprRangeLit",
}

func (k NodeKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}
