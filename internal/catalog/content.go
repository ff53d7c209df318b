package catalog

import "github.com/julianstephens/daylearn/internal/models"

var days = []models.DayRecord{
	{
		English: models.Entry{
			Term:       "Ephemeral",
			Definition: "Lasting for a very short time",
			Example:    "The beauty of cherry blossoms is ephemeral.",
		},
		Spanish: models.Entry{
			Term:       "Sobremesa",
			Definition: "Time spent at table after a meal in conversation",
			Example:    "Disfrutamos una larga sobremesa con la familia.",
		},
		Coding: models.Entry{
			Term:       "API",
			Definition: "Application Programming Interface - a way for programs to communicate",
			Example:    "The weather API provides real-time data.",
		},
		Finance: models.Entry{
			Term:       "Diversification",
			Definition: "Spreading investments across various assets to reduce risk",
			Example:    "Diversification protects your portfolio from market volatility.",
		},
		Philosophy: models.Entry{
			Term:       "Nihilism",
			Definition: "The view that life lacks objective meaning, purpose, or intrinsic value",
			Example:    "Nietzsche warned that nihilism would follow the loss of old certainties.",
		},
		Politics: models.Entry{
			Term:       "Bureaucracy",
			Definition: "A system of administration run by appointed officials following fixed rules",
			Example:    "The permit was delayed by layers of bureaucracy.",
		},
		StoicQuote: models.Quote{
			Quote:   "You have power over your mind, not outside events. Realize this, and you will find strength.",
			Author:  "Marcus Aurelius",
			Context: "Meditations, on what lies within our control",
		},
	},
	{
		English: models.Entry{
			Term:       "Serendipity",
			Definition: "The occurrence of events by chance in a happy way",
			Example:    "Finding that book was pure serendipity.",
		},
		Spanish: models.Entry{
			Term:       "Madrugada",
			Definition: "Early morning hours before dawn",
			Example:    "Me levanto en la madrugada para estudiar.",
		},
		Coding: models.Entry{
			Term:       "Algorithm",
			Definition: "A step-by-step procedure for solving a problem",
			Example:    "The sorting algorithm arranges data efficiently.",
		},
		Finance: models.Entry{
			Term:       "Compound Interest",
			Definition: "Interest calculated on initial principal and accumulated interest",
			Example:    "Compound interest helps your savings grow exponentially.",
		},
		Philosophy: models.Entry{
			Term:       "Epistemology",
			Definition: "The study of knowledge and justified belief",
			Example:    "Epistemology asks how we can know anything at all.",
		},
		Politics: models.Entry{
			Term:       "Federalism",
			Definition: "A system dividing power between a central government and regional governments",
			Example:    "Federalism lets states set many of their own laws.",
		},
		StoicQuote: models.Quote{
			Quote:   "We suffer more often in imagination than in reality.",
			Author:  "Seneca",
			Context: "Letters to Lucilius, on groundless fears",
		},
	},
	{
		English: models.Entry{
			Term:       "Ubiquitous",
			Definition: "Present, appearing, or found everywhere",
			Example:    "Smartphones have become ubiquitous in modern society.",
		},
		Spanish: models.Entry{
			Term:       "Antier",
			Definition: "The day before yesterday",
			Example:    "Antier fui al mercado con mi abuela.",
		},
		Coding: models.Entry{
			Term:       "Debugging",
			Definition: "The process of finding and fixing errors in code",
			Example:    "Debugging took most of my afternoon yesterday.",
		},
		Finance: models.Entry{
			Term:       "Inflation",
			Definition: "The rate at which prices for goods and services rise",
			Example:    "Inflation affects the purchasing power of your money.",
		},
		Philosophy: models.Entry{
			Term:       "Utilitarianism",
			Definition: "The doctrine that the right action is the one producing the greatest good for the greatest number",
			Example:    "A utilitarian would weigh the total happiness each policy creates.",
		},
		Politics: models.Entry{
			Term:       "Filibuster",
			Definition: "Prolonged speech used to delay or block a legislative vote",
			Example:    "The senator staged a filibuster that lasted through the night.",
		},
		StoicQuote: models.Quote{
			Quote:   "It's not what happens to you, but how you react to it that matters.",
			Author:  "Epictetus",
			Context: "Enchiridion, on judgments about events",
		},
	},
	{
		English: models.Entry{
			Term:       "Meticulous",
			Definition: "Showing great attention to detail; very careful and precise",
			Example:    "She kept meticulous notes during every experiment.",
		},
		Spanish: models.Entry{
			Term:       "Estrenar",
			Definition: "To use or wear something for the first time",
			Example:    "Hoy voy a estrenar mis zapatos nuevos.",
		},
		Coding: models.Entry{
			Term:       "Recursion",
			Definition: "A technique where a function calls itself to solve smaller instances of a problem",
			Example:    "Walking a directory tree is easy with recursion.",
		},
		Finance: models.Entry{
			Term:       "Liquidity",
			Definition: "How quickly an asset can be converted to cash without losing value",
			Example:    "Savings accounts offer high liquidity compared to real estate.",
		},
		Philosophy: models.Entry{
			Term:       "Existentialism",
			Definition: "The belief that individuals create meaning through free choices and responsibility",
			Example:    "Sartre's existentialism holds that existence precedes essence.",
		},
		Politics: models.Entry{
			Term:       "Gerrymandering",
			Definition: "Manipulating electoral district boundaries to favor a party or group",
			Example:    "Courts struck down the map as a case of gerrymandering.",
		},
		StoicQuote: models.Quote{
			Quote:   "Waste no more time arguing about what a good man should be. Be one.",
			Author:  "Marcus Aurelius",
			Context: "Meditations, book ten",
		},
	},
	{
		English: models.Entry{
			Term:       "Resilience",
			Definition: "The capacity to recover quickly from difficulties",
			Example:    "Her resilience carried the team through a hard season.",
		},
		Spanish: models.Entry{
			Term:       "Desvelado",
			Definition: "Having stayed awake all night or lost sleep",
			Example:    "Estoy desvelado porque terminé el proyecto anoche.",
		},
		Coding: models.Entry{
			Term:       "Refactoring",
			Definition: "Restructuring existing code without changing its external behavior",
			Example:    "Refactoring the module made it far easier to test.",
		},
		Finance: models.Entry{
			Term:       "Dividend",
			Definition: "A share of company profits paid out to shareholders",
			Example:    "The company raised its quarterly dividend this year.",
		},
		Philosophy: models.Entry{
			Term:       "Empiricism",
			Definition: "The theory that knowledge comes primarily from sensory experience",
			Example:    "Locke's empiricism treated the mind as a blank slate.",
		},
		Politics: models.Entry{
			Term:       "Sovereignty",
			Definition: "Supreme authority of a state to govern itself without outside interference",
			Example:    "The treaty recognized the island's sovereignty.",
		},
		StoicQuote: models.Quote{
			Quote:   "Luck is what happens when preparation meets opportunity.",
			Author:  "Seneca",
			Context: "Attributed, on readiness and chance",
		},
	},
}
