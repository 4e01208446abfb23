// Package rundir creates the date-stamped output directory for one build run.
//
// Directory naming and run locking are orchestration concerns: the chosen
// RunDir value is passed explicitly into the pipeline, never read back as
// ambient state. A file lock on the output root keeps two concurrent runs
// from racing over the same suffix.
package rundir
