package jira

import "testing"

func TestExtractRCA(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        string
	}{
		{
			"rca and prevention sections",
			"Summary: brief outage\n\nRCA:\nA deploy rolled out a bad config.\n\nPreventative Measures:\nAdd config validation to CI.\n",
			"RCA: A deploy rolled out a bad config.\nPreventative Measures: Add config validation to CI.",
		},
		{
			"inline rca header",
			"RCA: cache node ran out of memory\n",
			"RCA: cache node ran out of memory",
		},
		{
			"multi line section stops at next header",
			"Root Cause Analysis:\nNode crashed.\nFailover was slow.\nTimeline:\n10:00 crash\n",
			"RCA: Node crashed. Failover was slow.",
		},
		{
			"fallback to first cause line",
			"Customers saw errors.\nThe incident was caused by an expired certificate.\nWe rotated it.\n",
			"The incident was caused by an expired certificate.",
		},
		{
			"nothing usable",
			"Customers saw errors for a while.\n",
			"",
		},
		{
			"empty description",
			"",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractRCA(tt.description); got != tt.want {
				t.Errorf("ExtractRCA:\ngot  %q\nwant %q", got, tt.want)
			}
		})
	}
}
