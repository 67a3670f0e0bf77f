// Package dataset loads the input data for the exercises.
//
// A dataset is a YAML document with three optional lists:
//
//	prices: [100, 200, 150, 300, 250]
//	employees:
//	  - name: Bob
//	    years_of_experience: 3
//	tasks:
//	  - priority: 3
//	  - priority: 1
//	    title: optional label
//
// Every document is checked against an embedded CUE schema before use and
// employee names are NFC-normalized. Each load returns fresh slices, so a
// caller that sorts tasks in place never affects a later load.
package dataset
