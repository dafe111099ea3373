package core

import "github.com/valter-silva-au/bookmark-brain/pkg/models"

// DefaultTopics returns the built-in topic registry. Order is meaningful:
// the matcher scans topics in this order, and downstream consumers treat
// match order as priority (most specific entries are registered first).
//
// Patterns are RE2 syntax and matched case-insensitively against lowercased
// title+body. Exclude patterns mark text spans where pattern occurrences do
// not count; they stand in for the negative lookaheads RE2 does not support,
// so occurrences outside an excluded span still match.
func DefaultTopics() []models.Topic {
	return []models.Topic{
		// AI coding.
		{
			ID:          "claude-code",
			Patterns:    []string{`\bclaude code\b`, `\bclaude-code\b`, `\bclaudecode\b`},
			Tag:         "topic/claude-code",
			Wikilink:    "Claude Code",
			IndexTarget: "+Atlas/AI-Coding",
		},
		{
			ID:          "claude",
			Patterns:    []string{`\bclaude\b`, `\banthropic\b`},
			Exclude:     []string{`\bclaude[ -]?code\b`},
			Tag:         "topic/claude",
			Wikilink:    "Claude",
			IndexTarget: "+Atlas/AI-Coding",
		},
		{
			ID: "coding-agents",
			Patterns: []string{
				`\bcoding agent`, `\bai agent`, `\bagent\b.*\bcod`,
				`\bralph\b`, `\bafk.*loop\b`,
				`\bswarm agent`, `\borchestrat`,
			},
			Tag:         "topic/coding-agents",
			Wikilink:    "Coding Agents",
			IndexTarget: "+Atlas/AI-Coding",
		},
		{
			ID: "ai-coding",
			Patterns: []string{
				`\bai coding\b`, `\bvibe cod`, `\bai.assist`,
				`\bcursor\b`, `\bcopilot\b`, `\bcodex\b`,
				`\byolo mode\b`, `\bgithub copilot\b`,
			},
			Tag:         "topic/ai-coding",
			Wikilink:    "AI Coding",
			IndexTarget: "+Atlas/AI-Coding",
		},
		{
			ID: "skills",
			Patterns: []string{
				`\bskill[s]?\b.*\b(agent|claude|code|ai)\b`,
				`\b(agent|claude|code|ai)\b.*\bskill[s]?\b`,
				`\bskill\.md\b`, `\bopenski[l]+s\b`,
				`\bclawhu[b]\b`, `\bopenclaw\b`,
				`\bskills\b.*\bstandard\b`,
				`\bskills\b.*\becosystem\b`,
			},
			Tag:         "topic/ai-skills",
			Wikilink:    "AI Skills",
			IndexTarget: "+Atlas/AI-Coding",
		},
		{
			ID: "plugins",
			Patterns: []string{
				`\bplugin[s]?\b`, `\bcompound.engineering\b`,
				`\bmcp\b.*\b(server|app)\b`, `\b(server|app)\b.*\bmcp\b`,
				`\bmcp apps\b`, `\bcowork\b`,
			},
			Tag:         "topic/plugins",
			Wikilink:    "Plugins",
			IndexTarget: "+Atlas/AI-Coding",
		},
		{
			ID: "prompt-engineering",
			Patterns: []string{
				`\bprompt\b.*\bengineering\b`, `\bmeta.prompt\b`,
				`\bsystem prompt\b`, `\bcontext engineer\b`,
			},
			Tag:         "topic/prompt-engineering",
			Wikilink:    "Prompt Engineering",
			IndexTarget: "+Atlas/AI-Coding",
		},
		{
			ID:          "agent-sdk",
			Patterns:    []string{`\bagent sdk\b`, `\bclaude agent sdk\b`},
			Tag:         "topic/agent-sdk",
			Wikilink:    "Claude Agent SDK",
			IndexTarget: "+Atlas/AI-Coding",
		},
		// AI/ML general.
		{
			ID: "llm",
			Patterns: []string{
				`\bllm[s]?\b`, `\blarge language model\b`,
				`\bgpt\b`, `\blanguage model\b`,
			},
			Tag:         "topic/llm",
			Wikilink:    "LLMs",
			IndexTarget: "+Atlas/AI-Coding",
		},
		{
			ID: "ai-general",
			Patterns: []string{
				`\bartificial intelligence\b`, `\bmachine learning\b`,
				`\bdeep learning\b`, `\bneural net\b`,
			},
			Tag:         "topic/ai",
			Wikilink:    "Artificial Intelligence",
			IndexTarget: "+Atlas/AI-Coding",
		},
		{
			ID: "voice-ai",
			Patterns: []string{
				`\btts\b`, `\btext.to.speech\b`, `\bvoice\b.*\b(clone|ai|model)\b`,
				`\bchatterbox\b`, `\bmirage\b.*\bvoice\b`, `\bsotto\b`,
				`\binworld\b.*\btts\b`,
			},
			Tag:         "topic/voice-ai",
			Wikilink:    "Voice AI",
			IndexTarget: "+Atlas/AI-Coding",
		},
		{
			ID: "computer-vision",
			Patterns: []string{
				`\bcomputer vision\b`, `\bimage generat\b`,
				`\bhand tracking\b`, `\bvision.?os\b`, `\bmediapipe\b`,
				`\bdeepfake\b`, `\bmotion capture\b`,
			},
			Tag:         "topic/computer-vision",
			Wikilink:    "Computer Vision",
			IndexTarget: "+Atlas/AI-Coding",
		},
		{
			ID:          "gemini",
			Patterns:    []string{`\bgemini\b`, `\bmedgemma\b`},
			Tag:         "topic/gemini",
			Wikilink:    "Gemini",
			IndexTarget: "+Atlas/AI-Coding",
		},
		{
			ID:          "openai",
			Patterns:    []string{`\bopenai\b`, `\bchatgpt\b`},
			Tag:         "topic/openai",
			Wikilink:    "OpenAI",
			IndexTarget: "+Atlas/AI-Coding",
		},
		// Software engineering.
		{
			ID:          "typescript",
			Patterns:    []string{`\btypescript\b`, `\b\.ts\b`},
			Tag:         "topic/typescript",
			Wikilink:    "TypeScript",
			IndexTarget: "+Atlas/Software-Engineering",
		},
		{
			ID:          "react",
			Patterns:    []string{`\breact\b`, `\breact.?native\b`, `\bnext\.?js\b`, `\bexpo\b`},
			Tag:         "topic/react",
			Wikilink:    "React",
			IndexTarget: "+Atlas/Software-Engineering",
		},
		{
			ID:          "python",
			Patterns:    []string{`\bpython\b`, `\bfastapi\b`, `\bdjango\b`},
			Tag:         "topic/python",
			Wikilink:    "Python",
			IndexTarget: "+Atlas/Software-Engineering",
		},
		{
			ID:          "rust",
			Patterns:    []string{`\brust\b`},
			Exclude:     []string{`\brust\b.*stain`},
			Tag:         "topic/rust",
			Wikilink:    "Rust",
			IndexTarget: "+Atlas/Software-Engineering",
		},
		{
			ID:          "swift",
			Patterns:    []string{`\bswift\b`, `\bswiftui\b`, `\bxcode\b`, `\bios\b.*\bdev`},
			Tag:         "topic/swift",
			Wikilink:    "Swift",
			IndexTarget: "+Atlas/Software-Engineering",
		},
		{
			ID: "web-dev",
			Patterns: []string{
				`\bweb dev\b`, `\bfrontend\b`, `\bfront.end\b`,
				`\bcss\b`, `\btailwind\b`, `\bshadcn\b`,
				`\blanding page\b`, `\bui.?ux\b`,
				`\bshader[s]?\b`, `\bwebgl\b`,
			},
			Tag:         "topic/web-development",
			Wikilink:    "Web Development",
			IndexTarget: "+Atlas/Software-Engineering",
		},
		{
			ID: "api-design",
			Patterns: []string{
				`\bwebhook[s]?\b`, `\bwebsocket[s]?\b`,
				`\bapi\b.*\b(design|rest|graphql)\b`,
				`\bstripe\b.*\b(api|payment)\b`,
			},
			Tag:         "topic/api-design",
			Wikilink:    "API Design",
			IndexTarget: "+Atlas/Software-Engineering",
		},
		{
			ID: "devtools",
			Patterns: []string{
				`\bdevtool[s]?\b`, `\bcli\b`, `\bterminal\b`,
				`\bgithub\b`, `\bgit\b`,
				`\bvercel\b`, `\bdocker\b`,
			},
			Tag:         "topic/devtools",
			Wikilink:    "Developer Tools",
			IndexTarget: "+Atlas/Software-Engineering",
		},
		{
			ID: "browser-automation",
			Patterns: []string{
				`\bbrowser.?auto\b`, `\bagent.?browser\b`,
				`\bheadless\b`, `\bplaywright\b`, `\bpuppeteer\b`,
				`\bchrome extension\b`, `\bweb.?scrap\b`,
				`\bhyperbrowser\b`, `\bstealth mode\b`,
			},
			Tag:         "topic/browser-automation",
			Wikilink:    "Browser Automation",
			IndexTarget: "+Atlas/Software-Engineering",
		},
		{
			ID: "software-architecture",
			Patterns: []string{
				`\barchitect\b`, `\bdesign pattern\b`,
				`\bsoftware develop\b`, `\brefactor\b`,
				`\bmicroservice\b`, `\bmonolith\b`,
			},
			Tag:         "topic/software-architecture",
			Wikilink:    "Software Architecture",
			IndexTarget: "+Atlas/Software-Engineering",
		},
		{
			ID:          "open-source",
			Patterns:    []string{`\bopen.source\b`, `\bopen source\b`, `\bfoss\b`},
			Tag:         "topic/open-source",
			Wikilink:    "Open Source",
			IndexTarget: "+Atlas/Software-Engineering",
		},
		// Productivity and PKM.
		{
			ID:       "obsidian",
			Patterns: []string{`\bobsidian\b`, `\bpkm\b`, `\bpersonal knowledge\b`},
			Tag:      "topic/obsidian",
			Wikilink: "Obsidian",
		},
		{
			ID: "automation",
			Patterns: []string{
				`\bn8n\b`, `\bautomation\b`, `\bworkflow\b`,
				`\bnewsletter.*auto\b`, `\bauto.*newsletter\b`,
				`\bcron job\b`,
			},
			Tag:      "topic/automation",
			Wikilink: "Automation",
		},
		{
			ID:          "tailscale",
			Patterns:    []string{`\btailscale\b`},
			Tag:         "topic/tailscale",
			Wikilink:    "Tailscale",
			IndexTarget: "+Atlas/Software-Engineering",
		},
		{
			ID:       "rss",
			Patterns: []string{`\brss\b`, `\batom feed\b`},
			Tag:      "topic/rss",
			Wikilink: "RSS",
		},
		// Football.
		{
			ID:       "flamengo",
			Patterns: []string{`\bflamengo\b`, `\bmengão\b`, `\brubronegro\b`},
			Tag:      "topic/flamengo",
			Wikilink: "Flamengo",
		},
		{
			ID: "football",
			Patterns: []string{
				`\bfutebol\b`, `\bfootball\b`, `\bsoccer\b`,
				`\bbrasileirão\b`, `\blibertadores\b`,
				`\bcopa união\b`, `\bpenalt\b`,
				`\bcorinthians\b`, `\bpalmeiras\b`,
				`\bgabigol\b`, `\bzico\b`, `\bpedro\b.*\bgol\b`,
			},
			Tag:      "topic/football",
			Wikilink: "Football",
		},
		{
			ID:       "var",
			Patterns: []string{`\bvar\b`, `\brefere\b`, `árbitro`, `\bwilton\b`},
			Tag:      "topic/var",
			Wikilink: "VAR",
		},
		// Business.
		{
			ID: "startup",
			Patterns: []string{
				`\bstartup\b`, `\bfounder\b`, `\bsaas\b`,
				`\bproduct market fit\b`, `\bmrr\b`,
				`\brevenue\b`, `\bgrowth\b`,
			},
			Tag:      "topic/startup",
			Wikilink: "Startups",
		},
		{
			ID:       "marketing",
			Patterns: []string{`\bmarketing\b`, `\bconversion\b`, `\bseo\b`},
			Tag:      "topic/marketing",
			Wikilink: "Marketing",
		},
		// Education.
		{
			ID: "education",
			Patterns: []string{
				`\beducation\b`, `\blearn\b.*\b(fract|math|cod)`,
				`\btutorial\b`, `\bbeginner\b.*\bguide\b`,
				`\bteaching\b`, `\bclass\b.*\bmba\b`,
			},
			Tag:      "topic/education",
			Wikilink: "Education",
		},
		// Medicine and health.
		{
			ID: "medicine",
			Patterns: []string{
				`\bmedicine\b`, `\bclinical\b`, `\bmedical\b`,
				`\bhealth\b.*\b(ai|tech)\b`, `\bmedgemma\b`,
				`\bdiagnos\b`,
			},
			Tag:      "topic/medicine",
			Wikilink: "Medicine & AI",
		},
		// Specific tools.
		{
			ID:          "apify",
			Patterns:    []string{`\bapify\b`},
			Tag:         "topic/apify",
			Wikilink:    "Apify",
			IndexTarget: "+Atlas/Software-Engineering",
		},
		{
			ID:          "vercel",
			Patterns:    []string{`\bvercel\b`, `\bv0\b.*\bdev\b`},
			Tag:         "topic/vercel",
			Wikilink:    "Vercel",
			IndexTarget: "+Atlas/Software-Engineering",
		},
		{
			ID:       "telegram",
			Patterns: []string{`\btelegram\b`, `\bwhatsapp\b`, `\bchatbot\b`, `\bclawdbot\b`},
			Tag:      "topic/messaging-bots",
			Wikilink: "Messaging Bots",
		},
		{
			ID: "apple",
			Patterns: []string{
				`\bapple\b`, `\biphone\b`, `\bipad\b`,
				`\bmacos\b.*\b(app|menu)\b`, `\bapple tv\b`,
				`\bapple music\b`,
			},
			Exclude:  []string{`\bapple ?script\b`},
			Tag:      "topic/apple",
			Wikilink: "Apple",
		},
		// Humor and memes.
		{
			ID: "meme",
			Patterns: []string{
				`\bmeme\b`, `\bhumor\b`, `\bsátira\b`,
				`\bdesafortunados\b`, `\bfunny\b.*\bfootball\b`,
			},
			Tag:      "topic/meme",
			Wikilink: "Memes",
		},
		// Additional catch-alls.
		{
			ID: "x-platform",
			Patterns: []string{
				`\bx api\b`, `\btwitter api\b`, `\bdeveloper\.x\.com\b`,
				`\balgoritmo do x\b`, `\bx algorithm\b`,
			},
			Tag:      "topic/x-platform",
			Wikilink: "X Platform",
		},
		{
			ID: "saas",
			Patterns: []string{
				`\bsaas\b`, `\bcharging\b.*\b\$/?(year|month|yr|mo)\b`,
				`\b\d+k?\s*/\s*(year|month)\b`,
				`\bfirst 1000 (user|customer)\b`,
			},
			Tag:      "topic/saas",
			Wikilink: "SaaS",
		},
		{
			ID: "generative-ai",
			Patterns: []string{
				`\bgenerat\w+ ai\b`, `\bai generat\b`,
				`\bimage generat\b`, `\bsprite\b`, `\bnano.banana\b`,
				`\b3d.*\bgenerat\b`,
			},
			Tag:         "topic/generative-ai",
			Wikilink:    "Generative AI",
			IndexTarget: "+Atlas/AI-Coding",
		},
		{
			ID: "hiring",
			Patterns: []string{
				`\bhiring\b`, `\binterview\b.*\btech\b`,
				`\btechnical evaluat\b`,
			},
			Tag:      "topic/hiring",
			Wikilink: "Technical Hiring",
		},
		{
			ID: "productivity-personal",
			Patterns: []string{
				`\bmorning\b.*\bbrief\b`, `\bbrief\b.*\bmorning\b`,
				`\bpersonal (os|system|software)\b`,
				`\bspeed read\b`,
			},
			Tag:      "topic/personal-productivity",
			Wikilink: "Personal Productivity",
		},
		{
			ID:       "strava",
			Patterns: []string{`\bstrava\b`},
			Tag:      "topic/strava",
			Wikilink: "Strava",
		},
	}
}

// DefaultPeople returns the built-in handle → display name alias table used
// for wikilink generation. Handles are stored normalized (lowercase, no "@").
func DefaultPeople() map[string]string {
	return map[string]string{
		"borischerny":      "Boris Cherny",
		"mattpocockuk":     "Matt Pocock",
		"tobi":             "Tobi Lütke",
		"karpathy":         "Andrej Karpathy",
		"swyx":             "Swyx",
		"thekitze":         "Kitze",
		"zeeg":             "David Cramer",
		"raaborncreates":   "Jesse Raaborn",
		"kevinrose":        "Kevin Rose",
		"amasad":           "Amjad Masad",
		"simonw":           "Simon Willison",
		"levelsio":         "Pieter Levels",
		"guillermo":        "Guillermo Rauch",
		"alexalbert__":     "Alex Albert",
		"geoffreyhuntley":  "Geoffrey Huntley",
		"realgalego":       "Augusto Galego",
		"quiverquant":      "Quiver Quantitative",
		"petersteinberger": "Peter Steinberger",
		"terresatorres":    "Teresa Torres",
		"amorriscode":      "Anthony Morris",
	}
}

// contentTypeTags maps the coarse content type from a note's type: field to
// its base tag. Unrecognized types fall back to defaultContentTypeTag.
var contentTypeTags = map[string]string{
	"tweet":  "twitter/tweet",
	"thread": "twitter/thread",
	"video":  "twitter/video",
	"link":   "twitter/link",
}

const defaultContentTypeTag = "twitter/tweet"

// sourceTag is the fixed first tag applied to every enriched note.
const sourceTag = "source/twitter"
