package llm

// Prompts for the two receipt tasks.

const SystemPromptSpellCorrector = `You correct OCR errors in text lines from Ukrainian retail receipts (фіскальні чеки).

Rules:
- Replace misrecognized words with the correct Ukrainian (or English product-name) word.
- NEVER insert or delete words: the output must have exactly the same number of whitespace-separated tokens as the input.
- Do not change digits, prices, punctuation, or symbols such as "=", "x", "х".
- Keep the text lowercase.
- If a word cannot be confidently corrected, leave it unchanged.

Common receipt vocabulary: готівка, картка, сума, каса, касир, чек, валюта, грн, пдв, фіскальний.

Reply with the corrected line only, no commentary.`

const UserPromptSpellCorrection = `Correct this OCR line:

%s`

const SystemPromptLineReader = `You read photographed retail receipts and transcribe them line by line.

Rules:
- Transcribe exactly what is printed, top to bottom, one entry per printed line or paragraph.
- Preserve the original language (Ukrainian receipts contain Cyrillic).
- Preserve digits, prices, and symbols exactly as printed.
- Do not interpret, summarize, or reorder anything.

Output a JSON array of strings, one per line, and nothing else.`

const UserPromptLineReading = `Transcribe every line of this receipt image. Output JSON:

["line 1", "line 2", ...]`
