package battle

import "github.com/FenadoAI/fv2-ai-vibe-07ek7a/internal/domain/model"

// DefaultSeeds returns the built-in catalog of popular LLM models used by
// POST /api/models/seed. Counters are zeroed by the store on insert.
func DefaultSeeds() []model.Seed {
	return []model.Seed{
		{
			Name:             "GPT-4",
			Provider:         "OpenAI",
			Description:      "OpenAI's most advanced GPT model with superior reasoning capabilities",
			Capabilities:     []string{"Text Generation", "Code", "Math", "Analysis", "Creative Writing"},
			PerformanceScore: 95.0,
			ImageURL:         "https://images.unsplash.com/photo-1677442136019-21780ecad995?w=400",
		},
		{
			Name:             "Claude 4 Sonnet",
			Provider:         "Anthropic",
			Description:      "Anthropic's flagship model balancing intelligence, speed, and cost",
			Capabilities:     []string{"Text Analysis", "Code", "Math", "Creative Tasks", "Safety"},
			PerformanceScore: 94.0,
			ImageURL:         "https://images.unsplash.com/photo-1655635949348-953b0e3c140a?w=400",
		},
		{
			Name:             "Gemini 2.5 Pro",
			Provider:         "Google",
			Description:      "Google's most advanced multimodal AI with exceptional capabilities",
			Capabilities:     []string{"Multimodal", "Long Context", "Code", "Math", "Analysis"},
			PerformanceScore: 93.0,
			ImageURL:         "https://images.unsplash.com/photo-1639322537228-f710d846310a?w=400",
		},
		{
			Name:             "Claude 4 Haiku",
			Provider:         "Anthropic",
			Description:      "Fast and efficient model for quick responses",
			Capabilities:     []string{"Speed", "Text Generation", "Basic Analysis", "Code"},
			PerformanceScore: 87.0,
			ImageURL:         "https://images.unsplash.com/photo-1620712943543-bcc4688e7485?w=400",
		},
		{
			Name:             "Llama 3.3",
			Provider:         "Meta",
			Description:      "Open-source powerhouse with strong performance",
			Capabilities:     []string{"Open Source", "Text Generation", "Code", "Multilingual"},
			PerformanceScore: 89.0,
			ImageURL:         "https://images.unsplash.com/photo-1555949963-aa79dcee981c?w=400",
		},
		{
			Name:             "Mistral Large",
			Provider:         "Mistral AI",
			Description:      "European AI model with strong multilingual capabilities",
			Capabilities:     []string{"Multilingual", "Code", "Text Generation", "Analysis"},
			PerformanceScore: 86.0,
			ImageURL:         "https://images.unsplash.com/photo-1451187580459-43490279c0fa?w=400",
		},
		{
			Name:             "PaLM 2",
			Provider:         "Google",
			Description:      "Google's language model with strong reasoning abilities",
			Capabilities:     []string{"Reasoning", "Code", "Math", "Multilingual"},
			PerformanceScore: 85.0,
			ImageURL:         "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=400",
		},
		{
			Name:             "GPT-3.5 Turbo",
			Provider:         "OpenAI",
			Description:      "Fast and cost-effective model for general tasks",
			Capabilities:     []string{"Speed", "Cost-effective", "Text Generation", "Code"},
			PerformanceScore: 82.0,
			ImageURL:         "https://images.unsplash.com/photo-1676277791608-ac54325e36e1?w=400",
		},
	}
}
