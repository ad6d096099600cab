package rule

import (
	"fmt"
	"strconv"
	"strings"
)

// Command is a given-block's reduction function (§4.5): how the matched
// population collapses into the single number Operator compares against
// RHS.
type Command string

const (
	CommandCount   Command = "count"
	CommandSum     Command = "sum"
	CommandAverage Command = "average"
	CommandMaximum Command = "maximum"
	CommandMinimum Command = "minimum"
)

func commandFromString(s string) (Command, error) {
	switch Command(s) {
	case CommandCount, CommandSum, CommandAverage, CommandMaximum, CommandMinimum:
		return Command(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCommand, s)
	}
}

// ActionOperator is the comparator an Action or SubsetAction uses against
// its right-hand side.
type ActionOperator string

const (
	ActionEqual          ActionOperator = "=="
	ActionNotEqual       ActionOperator = "!="
	ActionLessThan       ActionOperator = "<"
	ActionLessOrEqual    ActionOperator = "<="
	ActionGreaterThan    ActionOperator = ">"
	ActionGreaterOrEqual ActionOperator = ">="
)

func actionOperatorFromString(s string) (ActionOperator, error) {
	switch ActionOperator(s) {
	case ActionEqual, ActionNotEqual, ActionLessThan, ActionLessOrEqual, ActionGreaterThan, ActionGreaterOrEqual:
		return ActionOperator(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOperator, s)
	}
}

// Compare applies op to (lhs, rhs).
func (op ActionOperator) Compare(lhs, rhs float64) bool {
	switch op {
	case ActionEqual:
		return lhs == rhs
	case ActionNotEqual:
		return lhs != rhs
	case ActionLessThan:
		return lhs < rhs
	case ActionLessOrEqual:
		return lhs <= rhs
	case ActionGreaterThan:
		return lhs > rhs
	case ActionGreaterOrEqual:
		return lhs >= rhs
	default:
		return false
	}
}

// Action is a given-block's terminal reducer: collapse the matched
// population via Command, then compare the result to RHS with Op (§4.5).
type Action struct {
	Command Command
	Op      ActionOperator
	RHS     float64
}

// Evaluate reduces population with a's Command and compares it to a.RHS.
func (a Action) Evaluate(population []float64) bool {
	return a.Op.Compare(reduce(a.Command, population), a.RHS)
}

func reduce(cmd Command, population []float64) float64 {
	switch cmd {
	case CommandCount:
		return float64(len(population))
	case CommandSum:
		var total float64
		for _, v := range population {
			total += v
		}
		return total
	case CommandAverage:
		if len(population) == 0 {
			return 0
		}
		var total float64
		for _, v := range population {
			total += v
		}
		return total / float64(len(population))
	case CommandMaximum:
		if len(population) == 0 {
			return 0
		}
		max := population[0]
		for _, v := range population[1:] {
			if v > max {
				max = v
			}
		}
		return max
	case CommandMinimum:
		if len(population) == 0 {
			return 0
		}
		min := population[0]
		for _, v := range population[1:] {
			if v < min {
				min = v
			}
		}
		return min
	default:
		return 0
	}
}

// SubsetAction is the ActionOnly rule variant's terminal comparator (§4.4):
// unlike Action, both operands name sibling rule subsets rather than a
// literal number, so they're resolved against completed_siblings at
// evaluation time rather than computed from a transcript population.
type SubsetAction struct {
	LHS string
	Op  ActionOperator
	RHS string
}

// ParseAction parses the authored "do" string form, "<command> <op> <rhs>"
// (e.g. "count >= 3", "average >= 2.0"), per §4.5.
func ParseAction(s string) (Action, error) {
	const op = "rule.ParseAction"
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return Action{}, fmt.Errorf("%s: %w: %q", op, ErrMalformedAction, s)
	}
	cmd, err := commandFromString(fields[0])
	if err != nil {
		return Action{}, fmt.Errorf("%s: %w", op, err)
	}
	actionOp, err := actionOperatorFromString(fields[1])
	if err != nil {
		return Action{}, fmt.Errorf("%s: %w", op, err)
	}
	rhs, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Action{}, fmt.Errorf("%s: %w: rhs %q is not a number", op, ErrMalformedAction, fields[2])
	}
	return Action{Command: cmd, Op: actionOp, RHS: rhs}, nil
}

// ParseSubsetAction parses the ActionOnly form, "<name> <op> <name>",
// where both operands name sibling rule subsets rather than a literal
// number (§4.4).
func ParseSubsetAction(s string) (SubsetAction, error) {
	const op = "rule.ParseSubsetAction"
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return SubsetAction{}, fmt.Errorf("%s: %w: %q", op, ErrMalformedAction, s)
	}
	actionOp, err := actionOperatorFromString(fields[1])
	if err != nil {
		return SubsetAction{}, fmt.Errorf("%s: %w", op, err)
	}
	return SubsetAction{LHS: fields[0], Op: actionOp, RHS: fields[2]}, nil
}
