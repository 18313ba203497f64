package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagehand-project/stagehand/pkg/models"
)

func TestExtractMetaPrompt(t *testing.T) {
	t.Run("full form", func(t *testing.T) {
		mp := ExtractMetaPrompt("(ROLE: coder) (CONTEXT: web backend) (PROMPT: implement the login handler) (OUTPUT: working code with tests)")
		require.NotNil(t, mp)
		assert.Equal(t, models.RoleCoder, mp.RoleSpecification)
		assert.Equal(t, "web backend", mp.Context["domain"])
		assert.Equal(t, "implement the login handler", mp.Instruction)
		assert.Equal(t, "working code with tests", mp.OutputRequirements)
	})

	t.Run("context and output optional", func(t *testing.T) {
		mp := ExtractMetaPrompt("(ROLE: critic) (PROMPT: review the design)")
		require.NotNil(t, mp)
		assert.Equal(t, models.RoleCritic, mp.RoleSpecification)
		assert.Equal(t, "review the design", mp.Instruction)
		assert.Empty(t, mp.OutputRequirements)
	})

	t.Run("case insensitive tags", func(t *testing.T) {
		mp := ExtractMetaPrompt("(role: coder) (prompt: do the thing)")
		require.NotNil(t, mp)
		assert.Equal(t, "do the thing", mp.Instruction)
	})

	t.Run("role without prompt is not a meta-prompt", func(t *testing.T) {
		assert.Nil(t, ExtractMetaPrompt("(ROLE: coder) just a note"))
	})

	t.Run("plain content is not a meta-prompt", func(t *testing.T) {
		assert.Nil(t, ExtractMetaPrompt("write the report"))
	})

	t.Run("body truncates at the first closing paren", func(t *testing.T) {
		mp := ExtractMetaPrompt("(ROLE: coder) (PROMPT: handle f(x) carefully)")
		require.NotNil(t, mp)
		assert.Equal(t, "handle f(x", mp.Instruction)
	})
}

func TestMetaPromptRoundTrip(t *testing.T) {
	original := &models.MetaPrompt{
		RoleSpecification:  models.RoleResearcher,
		Context:            map[string]string{"domain": "distributed systems"},
		Instruction:        "survey consensus algorithms",
		OutputRequirements: "annotated bibliography",
	}

	parsed := ExtractMetaPrompt(RenderMetaPrompt(original))
	require.NotNil(t, parsed)
	assert.Equal(t, original, parsed)
}

func TestMetaPromptRoundTripWithoutOptionals(t *testing.T) {
	original := &models.MetaPrompt{
		RoleSpecification: models.RoleCoder,
		Context:           map[string]string{},
		Instruction:       "fix the flaky test",
	}

	parsed := ExtractMetaPrompt(RenderMetaPrompt(original))
	require.NotNil(t, parsed)
	assert.Equal(t, original, parsed)
}

func TestExtractSlideSpec(t *testing.T) {
	t.Run("full form", func(t *testing.T) {
		spec := ExtractSlideSpec("(SLIDE_TYPE: title) (SLIDE_CONTENT: quarterly review) (OUTPUT: slide_1)")
		require.NotNil(t, spec)
		assert.Equal(t, "title", spec.SlideType)
		assert.Equal(t, "quarterly review", spec.SlideContent)
		assert.Equal(t, "slide_1", spec.Output)
	})

	t.Run("output tag optional", func(t *testing.T) {
		spec := ExtractSlideSpec("(SLIDE_TYPE: chart) (SLIDE_CONTENT: revenue by region)")
		require.NotNil(t, spec)
		assert.Empty(t, spec.Output)
	})

	t.Run("requires both type and content", func(t *testing.T) {
		assert.Nil(t, ExtractSlideSpec("(SLIDE_TYPE: chart) no content tag"))
	})

	t.Run("non-slide output tag is ignored", func(t *testing.T) {
		spec := ExtractSlideSpec("(SLIDE_TYPE: t) (SLIDE_CONTENT: c) (OUTPUT: report.md)")
		require.NotNil(t, spec)
		assert.Empty(t, spec.Output)
	})
}

func TestAnnotateTodos(t *testing.T) {
	todos := []models.Todo{
		{ID: "plain", Content: "write the summary", Status: models.TodoPending, Priority: models.PriorityLow},
		{ID: "agent", Content: "(ROLE: coder) (PROMPT: build the parser)", Status: models.TodoPending, Priority: models.PriorityHigh},
		{ID: "slide", Content: "(SLIDE_TYPE: title) (SLIDE_CONTENT: intro)", Status: models.TodoPending, Priority: models.PriorityLow},
	}

	out := AnnotateTodos(todos)
	require.Len(t, out, 3)

	assert.Equal(t, models.KindDirectExecution, out[0].Kind)
	assert.Nil(t, out[0].MetaPrompt)

	assert.Equal(t, models.KindTaskAgent, out[1].Kind)
	require.NotNil(t, out[1].MetaPrompt)
	assert.Equal(t, models.RoleCoder, out[1].MetaPrompt.RoleSpecification)

	assert.Equal(t, models.KindDirectExecution, out[2].Kind)
	require.NotNil(t, out[2].SlideSpec)
	assert.Equal(t, "title", out[2].SlideSpec.SlideType)

	// Input slice is not mutated.
	assert.Nil(t, todos[1].MetaPrompt)
}

func TestAnnotateTodosPreservesExistingMetaPrompt(t *testing.T) {
	existing := &models.MetaPrompt{RoleSpecification: models.RoleCritic, Instruction: "keep me"}
	out := AnnotateTodos([]models.Todo{{
		ID: "a", Content: "(ROLE: coder) (PROMPT: would overwrite)",
		Kind: models.KindTaskAgent, MetaPrompt: existing,
	}})
	require.Len(t, out, 1)
	assert.Same(t, existing, out[0].MetaPrompt)
}
