package interpreter

const helpText = `You can teach the engine with the following commands:

  all NOUN are NOUN
  no NOUN are NOUN
  some NOUN are NOUN

You can ask the engine the following questions:

  are all NOUN NOUN?
  are no NOUN NOUN?
  are some NOUN NOUN?
  why are all NOUN NOUN?

Type "nouns" to list what the engine knows about.

Example:

   > all dogs are mammals
   > all mammals are animals
   > are all dogs animals?
`

const (
	replyOkay          = "Okay."
	replyNoNouns       = "I know no nouns yet."
	replyContradicts   = "That contradicts what I know."
	replyNotUnderstood = `I do not understand. Type "help" for help.`
)
