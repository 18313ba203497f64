package prompt

import "github.com/stagehand-project/stagehand/pkg/models"

// basePhasePrompts are the static per-phase instruction templates. The
// builder appends the role enhancement and the phase context block, then
// substitutes {{session_id}} style placeholders.
var basePhasePrompts = map[models.Phase]string{
	models.PhaseQuery: `You are interpreting a user objective for session {{session_id}}.

Restate the objective in precise, actionable terms. Identify the deliverable,
the constraints, and anything ambiguous that must be resolved by assumption.
Report the result under the key "interpreted_goal". If the detected role is
wrong for this objective, supply a corrected "role" value.`,

	models.PhaseEnhance: `You are enhancing the interpreted goal for session {{session_id}}.

Expand the interpreted goal with success criteria, scope boundaries, and the
concrete quality bar the final result must meet. Report the result under the
key "enhanced_goal".`,

	models.PhaseKnowledge: `You are gathering knowledge for session {{session_id}}.

External API knowledge has been collected automatically where possible; it
appears in the context block below. Fill remaining gaps with your own search
tools, reconcile contradictions, and report what you learned under
"knowledge_gathered".`,

	models.PhasePlan: `You are planning session {{session_id}}.

Break the enhanced goal into an ordered todo list. Each todo needs an id,
content, status, priority, and kind. Delegate specialist work by embedding a
meta-prompt in the todo content using the form
(ROLE: x) (CONTEXT: y) (PROMPT: z) (OUTPUT: w); such todos use kind
"task_agent". Slide deliverables use (SLIDE_TYPE: x) (SLIDE_CONTENT: y)
instead. Report "plan_created": true and the list under "current_todos".`,

	models.PhaseExecute: `You are executing session {{session_id}}.

Work the current task from the todo list. Exactly one todo may be
in_progress at a time. For task_agent todos, spawn the sub-agent described
by the embedded meta-prompt and integrate its output. Report
"execution_success", updated "current_todos", "current_task_index", and
"more_tasks_pending".`,

	models.PhaseVerify: `You are verifying session {{session_id}}.

Audit the todo list against the enhanced goal. Confirm every critical task
is complete and the deliverable meets the stated quality bar. Report
"verification_passed" and, when failing, what remains.`,

	models.PhaseDone: `Session {{session_id}} is complete. No further action is required.`,
}

// roleEnhancements layer the role's working style onto the base phase
// prompt. Not every (role, phase) pair has text; missing entries fall back
// to the generic enhancement built from the role config.
var roleEnhancements = map[models.Role]map[models.Phase]string{
	models.RolePlanner: {
		models.PhasePlan:    "Favor small, independently verifiable tasks. Sequence by dependency, not by convenience.",
		models.PhaseExecute: "Keep the plan current: re-order remaining tasks when execution invalidates assumptions.",
	},
	models.RoleCoder: {
		models.PhasePlan:    "Plan in vertical slices that each end with something runnable and testable.",
		models.PhaseExecute: "Write the test alongside the change. Prefer the smallest diff that satisfies the task.",
		models.PhaseVerify:  "Re-run everything; passing tests are the only acceptable completion evidence.",
	},
	models.RoleCritic: {
		models.PhaseVerify: "Assume the work is flawed until proven otherwise. Check each rule independently.",
	},
	models.RoleResearcher: {
		models.PhaseKnowledge: "Chase primary sources. Note publication dates and flag anything stale.",
	},
	models.RoleAnalyzer: {
		models.PhaseKnowledge: "Prefer structured data over prose. Record units and collection methodology.",
	},
	models.RoleSynthesizer: {
		models.PhaseExecute: "Merge as you go: integrate each task's output into the running deliverable immediately.",
	},
	models.RoleUIArchitect: {
		models.PhasePlan: "Structure tasks screen-by-screen; each screen task lists its entry and exit interactions.",
	},
	models.RoleUIImplementer: {
		models.PhaseExecute: "Build components in isolation first, then compose. Verify at mobile and desktop widths.",
	},
	models.RoleUIRefiner: {
		models.PhaseVerify: "Walk the interface with keyboard only; anything unreachable fails verification.",
	},
}
