package regions

// HelpText is the content of the help page.
const HelpText = `# Help
The following page contains instructions on using the app.

## Commands
Commands are typed into the status line after pressing *:* and can be issued
from pretty much anywhere within the app.

### General
_:help_            | display this page
_:info_            | display the info page
_:new_             | create a fresh score

### I/O
_:q[!]_ or _:quit[!]_                | terminate the app [without saving]
_:w[!] [path]_ or _:write[!] [path]_ | [forcibly] save [to the specified path]
_:o[!] path_ or _:open[!] path_      | open file [discarding current]
_:wq[!] [path]_                      | _:w_ and _:q[!]_ combined
_:export path_                       | export the score as a MIDI file

### Score
_:set clef treble|alto|bass_ | change the clef
_:set time N/M_              | change the time signature
_:set key tonic major|minor_ | change the key signature
_:insert tokens..._          | insert notes written in LilyPond syntax

## Editor keys
_h_/_l_ move between notes, _H_/_L_ between measures, _gg_/_G_ jump to the
first and last note. _x_ deletes the note under the cursor, _s_ splits the
measure at the cursor and _J_ merges it with the next one.

_i_ inserts a note: first pick a duration (_1 2 4 8_ select whole through
eighth, _6_/_3_/_7_ the sixteenth, thirty-second and sixty-fourth, _._ and _,_
add and remove dots, _t_ cycles tuplets, _r_ toggles rest), confirm with
enter, then pick a pitch (_a_-_g_ letters, _S_/_F_ sharpen and flatten, _N_
natural, _+_/_-_ octave, _r_ rest) and confirm with enter. _d_ and enter
re-edit the duration and pitch of an existing note.`

// InfoText is the content of the info page.
const InfoText = `# Info
The following page contains relevant information about the app (and it's
creator and maintainer).

## Context
This project was created as a semester project for the AP Programming Course
at the Charles University (_http://mj.ucw.cz/vyuka/1920/p1x/_) by Tomáš Sláma
(_http://slama.dev/_).

## Source Code
The code is licensed under MIT and freely available at
_https://github.com/xiaoxiae/Vimvaldi/_, so feel free do whatever you want
with it :-). Feel free to create an issue or submit a pull request if there's
something you'd like to see changed or implemented!

## Disclaimer
This is a toy project. Please, for the love of god, do not use this anywhere
near production.`
