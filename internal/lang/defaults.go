package lang

// Default returns the built-in tables.
//
// The trigger list and the per-section column ranges reflect the classic
// object-text corpus: record-field-like sections protect all four structural
// columns (a field named Code or Begin is data, not a keyword), key-like
// sections only the first two.
func Default() *Tables {
	t := &Tables{
		TriggerProperties: []string{
			"OnValidate", "OnLookup",
			"OnInsert", "OnModify", "OnDelete", "OnRename", "OnRun", "OnInit",
			"OnPush", "OnActivate", "OnDeactivate", "OnFormat",
			"OnBeforeInput", "OnAfterInput", "OnAssistEdit", "OnDrillDown",
			"OnNewRecord", "OnInsertRecord", "OnModifyRecord", "OnDeleteRecord",
			"OnOpenForm", "OnCloseForm", "OnQueryCloseForm",
			"OnFindRecord", "OnNextRecord",
			"OnAfterGetRecord", "OnAfterGetCurrRecord",
			"OnPreDataItem", "OnPostDataItem",
			"OnPreReport", "OnPostReport", "OnInitReport",
			"OnPreSection", "OnPostSection",
			"OnPreXMLport", "OnPostXMLport", "OnInitXMLport",
			"OnAfterAssignVariable", "OnBeforePassVariable",
			"OnAfterAssignField", "OnBeforePassField",
			"OnAfterInitRecord", "OnAfterInsertRecord",
			"OnTimer", "OnAction",
		},
		ProtectedColumns: map[string]ColumnRange{
			"fields":      {First: 1, Last: 4},
			"controls":    {First: 1, Last: 4},
			"elements":    {First: 1, Last: 4},
			"keys":        {First: 1, Last: 2},
			"dataitems":   {First: 1, Last: 2},
			"actions":     {First: 1, Last: 2},
			"fieldgroups": {First: 1, Last: 2},
			"labels":      {First: 1, Last: 2},
			"menunodes":   {First: 1, Last: 2},
		},
		ColumnTracked: []string{
			"fields", "controls", "elements", "keys", "dataitems",
			"actions", "fieldgroups", "labels", "menunodes",
		},
		Compounds: []Compound{
			{First: "OBJECT", Sep: "-", Second: "PROPERTIES", Kind: "OBJECT-PROPERTIES"},
		},
	}
	if err := t.normalize(); err != nil {
		// the built-in tables are validated by tests
		panic(err)
	}
	return t
}
