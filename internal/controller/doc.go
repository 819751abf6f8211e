// Package controller drives one job through the fixed stage sequence
// before_install → install → script → after_success. It assembles each
// stage's step list from the job specification's environment, invokes the
// stage runner, carries activation effects across stage boundaries, and
// records failure provenance.
//
// Two rules are hard invariants here, not options: a failed stage skips
// every later stage, and after_success never runs unless everything
// before it succeeded. When after_success itself fails (a coverage
// reporting service being down), the failure is logged and the job result
// stays successful.
package controller
