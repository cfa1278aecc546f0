// Package selection builds iPath selection text from tabular data.
//
// A selection is the line-oriented payload the iPath service renders:
// one line per entity, the entity identifier first, followed by any of a
// color, a width token and an opacity, separated by single spaces:
//
//	C00003 RGB(252,255,164) W50.0 1.0
//	C00004 RGB(0,0,4) W0.0 0.0
//	00650 W25.0
//
// # Tables
//
// Input is a [Table]: an ordered list of identifiers plus named numeric
// columns holding one value per identifier. Tables can be built in code or
// read from CSV, TSV and JSON with [ReadFile], [ReadCSV] and [ReadJSON].
//
// # Identifiers
//
// Identifiers are opaque to this package and passed through unchanged.
// iPath understands, among others:
//
//	KEGG pathways      00650
//	KEGG compounds     C00003
//	KEGG KOs           K01000
//	STRING proteins    224324.AQ_626
//	KEGG proteins      aae:aq_626
//	COGs/eggNOG OGs    COG0007
//	Enzyme EC numbers  E2.4.1.82 (prefix E or EC)
//	Uniprot IDs/ACCs   UNIPROT:Q93015
//	IPI IDs            IPI00745889
//	NCBI GI IDs        ncbi-gi:326314893
//
// # Building
//
//	text, err := selection.Build(table, selection.Options{
//	    ColorColumn: "log2fc",
//	    WidthColumn: "abundance",
//	})
package selection
