package commands

// Report is the top-level structure of the inspect YAML output.
type Report struct {
	Dataset Candidates `yaml:"dataset"`
}

// Candidates lists the dataset shape and every rule's candidate set.
type Candidates struct {
	Rows                   int      `yaml:"rows"`
	Columns                int      `yaml:"columns"`
	SingleValueColumns     []string `yaml:"singleValueColumns"`
	IdentifierColumns      []string `yaml:"identifierColumns"`
	MajorityMissingColumns []string `yaml:"majorityMissingColumns"`
	MajorityMissingRows    []int    `yaml:"majorityMissingRows"`
	BooleanColumns         []string `yaml:"booleanColumns"`
}
